package tui

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/hugup/hugup/internal/bus"
	"github.com/hugup/hugup/internal/chatlist"
	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui/keys"
	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/hugup/hugup/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page names used on the navigation stack.
const (
	pageAuth     = "auth"
	pageChats    = "chats"
	pageChat     = "chat"
	pageStatus   = "status"
	pageProfile  = "profile"
	pageSettings = "settings"
	pageHelp     = "help"
)

// App is the terminal UI shell: a page stack with header, crumbs, prompt and
// status bar, refreshed from bus events.
type App struct {
	app     *tview.Application
	backend Backend
	bus     *bus.Bus
	logger  *zap.Logger
	theme   *ui.Theme

	root     *tview.Flex
	pages    *ui.Pages
	crumbs   *ui.Crumbs
	menu     *ui.Menu
	logo     *ui.Logo
	info     *ui.SessionInfo
	prompt   *ui.Prompt
	flash    *ui.FlashModel
	registry *keys.Registry

	chatList  *views.ChatList
	thread    *views.MessageThread
	feed      *views.StatusFeed
	profile   *views.Profile
	settings  *views.Settings
	auth      *views.Auth
	help      *views.Help
	statusBar *views.StatusBar

	components map[string]ui.Component

	done      chan struct{}
	stopOnce  sync.Once
	cancelBus func()
}

// New creates the TUI application over the given backend.
func New(backend Backend, b *bus.Bus, logger *zap.Logger) *App {
	theme := ui.ByName(backend.Theme())

	a := &App{
		app:      tview.NewApplication(),
		backend:  backend,
		bus:      b,
		logger:   logger,
		theme:    theme,
		pages:    ui.NewPages(),
		crumbs:   ui.NewCrumbs(theme),
		menu:     ui.NewMenu(theme),
		logo:     ui.NewLogo(theme),
		info:     ui.NewSessionInfo(theme),
		prompt:   ui.NewPrompt(theme),
		flash:    ui.NewFlashModel(),
		registry: keys.NewRegistry(),
		done:     make(chan struct{}),
	}

	a.chatList = views.NewChatList(theme)
	a.thread = views.NewMessageThread(theme, backend.DisplayNameFor)
	a.feed = views.NewStatusFeed(theme, backend.DisplayNameFor)
	a.profile = views.NewProfile(theme)
	a.settings = views.NewSettings(theme)
	a.auth = views.NewAuth(theme)
	a.help = views.NewHelp(theme)
	a.statusBar = views.NewStatusBar(theme, a.flash)

	a.components = map[string]ui.Component{
		pageAuth:     a.auth,
		pageChats:    a.chatList,
		pageChat:     a.thread,
		pageStatus:   a.feed,
		pageProfile:  a.profile,
		pageSettings: a.settings,
		pageHelp:     a.help,
	}

	a.statusBar.SetSession(backend.SessionName())
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(&keys.Action{
		Rune: 'q', Key: tcell.KeyRune,
		Description: "Quit", Visible: false,
		Handler: func() { a.Stop() },
	})
	a.registry.AddGlobal(&keys.Action{
		Rune: '?', Key: tcell.KeyRune,
		Description: "Help", Visible: false,
		Handler: func() { a.switchTo(pageHelp) },
	})
	a.registry.AddGlobal(&keys.Action{
		Rune: ':', Key: tcell.KeyRune,
		Description: "Command", Visible: false,
		Handler: func() { a.showPrompt(ui.PromptCommand) },
	})
	a.registry.AddGlobal(&keys.Action{
		Rune: 't', Key: tcell.KeyRune,
		Description: "Theme", Visible: false,
		Handler: func() { a.backend.ToggleTheme() },
	})

	a.registry.AddView(pageChats, &keys.Action{
		Rune: '/', Key: tcell.KeyRune,
		Handler: func() { a.showPrompt(ui.PromptSearch) },
	})
	for i, f := range chatlist.Filters {
		filter := f
		a.registry.AddView(pageChats, &keys.Action{
			Rune: rune('1' + i), Key: tcell.KeyRune,
			Handler: func() { a.chatList.SetFilter(filter) },
		})
	}
	a.registry.AddView(pageChats, &keys.Action{
		Rune: 'p', Key: tcell.KeyRune,
		Handler: func() {
			if chat, ok := a.chatList.SelectedChat(); ok {
				a.backend.TogglePin(chat.ID)
			}
		},
	})
	a.registry.AddView(pageChats, &keys.Action{
		Rune: 'm', Key: tcell.KeyRune,
		Handler: func() {
			if chat, ok := a.chatList.SelectedChat(); ok {
				a.backend.ToggleMute(chat.ID)
			}
		},
	})
	a.registry.AddView(pageChats, &keys.Action{
		Rune: 's', Key: tcell.KeyRune,
		Handler: func() { a.switchTo(pageStatus) },
	})
	a.registry.AddView(pageChats, &keys.Action{
		Rune: 'u', Key: tcell.KeyRune,
		Handler: func() { a.switchTo(pageProfile) },
	})
	a.registry.AddView(pageChats, &keys.Action{
		Rune: 'o', Key: tcell.KeyRune,
		Handler: func() { a.switchTo(pageSettings) },
	})
}

func (a *App) setupCallbacks() {
	a.chatList.SetSelectedFunc(func(row, col int) {
		if chat, ok := a.chatList.SelectedChat(); ok {
			a.openChat(chat)
		}
	})

	a.thread.SetOnSend(func(text string) {
		chatID := a.backend.ActiveChatID()
		if chatID == "" {
			return
		}
		if err := a.backend.SendMessage(chatID, text); err != nil {
			a.flash.Err(err)
			a.statusBar.Refresh()
		}
	})

	a.auth.SetOnLogin(func(phone string) {
		if err := a.backend.Login(phone); err != nil {
			a.flash.Err(err)
			a.statusBar.Refresh()
			return
		}
		a.enterMain()
	})

	a.settings.SetOnToggleTheme(func() { a.backend.ToggleTheme() })
	a.settings.SetOnLogout(func() { a.doLogout() })

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		switch mode {
		case ui.PromptCommand:
			a.executeCommand(text)
		case ui.PromptSearch:
			a.chatList.SetQuery(strings.TrimSpace(text))
		}
	})
	a.prompt.SetOnCancel(func() { a.hidePrompt() })

	a.pages.SetOnChange(func(stack []string) {
		names := make([]string, len(stack))
		for i, n := range stack {
			names[i] = n
			if c, ok := a.components[n]; ok {
				names[i] = c.Name()
			}
		}
		a.crumbs.Update(names)
		a.updateMenu()
	})
}

func (a *App) setupLayout() {
	header := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.info, 0, 1, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(a.logo, 20, 0, false)

	a.pages.AddPage(pageAuth, a.auth, true, false)
	a.pages.AddPage(pageChats, a.chatList, true, false)
	a.pages.AddPage(pageChat, a.thread, true, false)
	a.pages.AddPage(pageStatus, a.feed, true, false)
	a.pages.AddPage(pageProfile, a.profile, true, false)
	a.pages.AddPage(pageSettings, a.settings, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 6, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	current := a.pages.Current()

	// The login form owns all input while it is up.
	if current == pageAuth {
		return event
	}

	if event.Key() == tcell.KeyEscape {
		if a.app.GetFocus() == a.prompt.InputField {
			return event // prompt handles its own escape
		}
		switch current {
		case pageChat, pageStatus, pageProfile, pageSettings, pageHelp:
			if current == pageChat {
				a.backend.SetActiveChat("")
			}
			a.pages.Pop()
			a.focusPage()
			return nil
		}
	}

	// Text inputs get every key.
	switch a.app.GetFocus().(type) {
	case *tview.InputField, *tview.Button:
		return event
	}

	if current == pageChat && event.Key() == tcell.KeyRune && event.Rune() == 'i' {
		a.app.SetFocus(a.thread.Composer())
		return nil
	}

	if a.registry.HandleEvent(current, event) {
		return nil
	}
	return event
}

func (a *App) openChat(chat store.Chat) {
	a.backend.SetActiveChat(chat.ID)
	if c, ok := a.backend.ActiveChat(); ok {
		a.thread.Update(c, a.backend.CurrentUser().ID)
	}
	a.pages.Push(pageChat)
	a.app.SetFocus(a.thread.Composer())
}

// switchTo pushes a page unless it is already on top.
func (a *App) switchTo(page string) {
	a.pages.Push(page)
	a.focusPage()
}

func (a *App) showPrompt(mode ui.PromptMode) {
	a.prompt.Activate(mode)
	a.root.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt.InputField)
}

func (a *App) hidePrompt() {
	a.root.ResizeItem(a.prompt, 0, 0)
	a.focusPage()
}

// focusPage moves input focus to the primitive of the current page.
func (a *App) focusPage() {
	switch a.pages.Current() {
	case pageAuth:
		a.app.SetFocus(a.auth)
	case pageChats:
		a.app.SetFocus(a.chatList)
	case pageChat:
		a.app.SetFocus(a.thread.Composer())
	case pageStatus:
		a.app.SetFocus(a.feed)
	case pageProfile:
		a.app.SetFocus(a.profile)
	case pageSettings:
		a.app.SetFocus(a.settings)
	case pageHelp:
		a.app.SetFocus(a.help)
	}
}

func (a *App) updateMenu() {
	if c, ok := a.components[a.pages.Current()]; ok {
		a.menu.Update(c.Hints())
	}
}

// enterMain switches from the login form to the chat list.
func (a *App) enterMain() {
	a.statusBar.SetUser(a.backend.CurrentUser().Name)
	a.refresh()
	a.pages.Reset(pageChats)
	a.focusPage()
}

func (a *App) doLogout() {
	if err := a.backend.Logout(); err != nil {
		a.flash.Err(err)
		a.statusBar.Refresh()
		return
	}
	a.auth.Reset()
	a.statusBar.SetUser("")
	a.pages.Reset(pageAuth)
	a.focusPage()
}

// refresh re-renders every data-bound view from the backend.
func (a *App) refresh() {
	a.chatList.Update(a.backend.Chats())
	if a.pages.Current() == pageChat {
		if chat, ok := a.backend.ActiveChat(); ok {
			a.thread.Update(chat, a.backend.CurrentUser().ID)
		}
	}
	a.feed.Update(a.backend.Stories())
	a.profile.Update(a.backend.CurrentUser())
	a.settings.Update(a.backend.Theme(), a.backend.Wallpapers())

	unread := 0
	chats := a.backend.Chats()
	for _, c := range chats {
		unread += c.UnreadCount
	}
	user := a.backend.CurrentUser()
	a.info.Update(ui.SessionData{
		Session: a.backend.SessionName(),
		User:    user.Name,
		Phone:   user.Phone,
		Chats:   len(chats),
		Unread:  unread,
		Theme:   a.backend.Theme(),
	})
	a.statusBar.Refresh()
}

// applyTheme repaints every component with the palette for the current
// preference.
func (a *App) applyTheme(t *ui.Theme) {
	a.theme = t
	a.crumbs.ApplyTheme(t)
	a.menu.ApplyTheme(t)
	a.logo.ApplyTheme(t)
	a.info.ApplyTheme(t)
	a.prompt.ApplyTheme(t)
	a.statusBar.ApplyTheme(t)
	for _, c := range a.components {
		c.ApplyTheme(t)
	}
}

// watchEvents forwards bus events into the UI goroutine.
func (a *App) watchEvents() {
	events, cancel := a.bus.Subscribe("", 64)
	a.cancelBus = cancel
	go func() {
		for {
			select {
			case ev := <-events:
				a.app.QueueUpdateDraw(func() { a.handleEvent(ev) })
			case <-a.done:
				return
			}
		}
	}()
}

func (a *App) handleEvent(ev bus.Event) {
	if ev.Kind == bus.KindThemeChanged {
		a.applyTheme(ui.ByName(a.backend.Theme()))
	}
	a.refresh()
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	a.watchEvents()
	a.refresh()

	if a.backend.Authenticated() {
		a.statusBar.SetUser(a.backend.CurrentUser().Name)
		a.pages.Reset(pageChats)
	} else {
		a.pages.Reset(pageAuth)
	}
	a.focusPage()

	a.logger.Info("ui started", zap.String("page", a.pages.Current()))
	return a.app.Run()
}

// Stop shuts the TUI down. Safe to call more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
		if a.cancelBus != nil {
			a.cancelBus()
		}
		a.app.Stop()
	})
}
