package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hugup/hugup/internal/status"
	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// MessageThread displays the messages of one chat plus the composer. Outgoing
// messages carry delivery ticks that recolor as the status advances.
type MessageThread struct {
	*tview.Flex
	theme    *ui.Theme
	messages *tview.TextView
	composer *tview.InputField

	chat    store.Chat
	selfID  string
	resolve func(userID string) string
	onSend  func(text string)
}

// NewMessageThread creates a new message thread view. resolve maps sender ids
// to display names for group chats.
func NewMessageThread(theme *ui.Theme, resolve func(userID string) string) *MessageThread {
	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetTitle(" Messages ")

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetTitle(" Compose (i to focus) ")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(messages, 0, 1, true).
		AddItem(composer, 3, 0, false)

	mt := &MessageThread{
		Flex:     flex,
		theme:    theme,
		messages: messages,
		composer: composer,
		resolve:  resolve,
	}
	mt.ApplyTheme(theme)

	composer.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter && mt.onSend != nil {
			text := composer.GetText()
			if text != "" {
				mt.onSend(text)
				composer.SetText("")
			}
		}
	})

	return mt
}

// Name implements Component.
func (mt *MessageThread) Name() string {
	if mt.chat.ID == "" {
		return "Messages"
	}
	return mt.chat.DisplayName()
}

// Hints implements Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "Enter", Description: "Send (in composer)"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements Component.
func (mt *MessageThread) ApplyTheme(t *ui.Theme) {
	mt.theme = t
	mt.messages.SetBorderColor(t.BorderColor)
	mt.messages.SetBackgroundColor(t.BgColor)
	mt.messages.SetTextColor(t.FgColor)
	mt.messages.SetTitleColor(t.TitleColor)
	mt.composer.SetBorderColor(t.BorderColor)
	mt.composer.SetBackgroundColor(t.BgColor)
	mt.composer.SetFieldBackgroundColor(t.BgColor)
	mt.composer.SetFieldTextColor(t.FgColor)
	mt.composer.SetLabelColor(t.MenuKeyColor)
	mt.composer.SetTitleColor(t.TitleColor)
	mt.render()
}

// SetOnSend sets the callback when a message is submitted.
func (mt *MessageThread) SetOnSend(fn func(text string)) {
	mt.onSend = fn
}

// Update replaces the displayed chat and re-renders.
func (mt *MessageThread) Update(chat store.Chat, selfID string) {
	mt.chat = chat
	mt.selfID = selfID
	mt.render()
}

func (mt *MessageThread) render() {
	mt.messages.Clear()

	title := mt.chat.DisplayName()
	if mt.chat.ID == "" {
		title = "Messages"
	}
	mt.messages.SetTitle(fmt.Sprintf(" %s ", title))

	for _, m := range mt.chat.Messages {
		sender := "You"
		if m.SenderID != mt.selfID {
			sender = m.SenderID
			if mt.resolve != nil {
				sender = mt.resolve(m.SenderID)
			}
		}

		ts := formatTimestamp(m.Timestamp)
		line := fmt.Sprintf("[::b]%s[-:-:-] [::d]%s[-:-:-]%s\n%s\n\n",
			tview.Escape(sanitizeForTerminal(sender)), ts,
			mt.ticks(m),
			tview.Escape(sanitizeForTerminal(messageBody(m))))
		_, _ = fmt.Fprint(mt.messages, line)
	}

	mt.messages.ScrollToEnd()
}

// ticks renders the delivery indicator for outgoing messages: one check when
// sent, two when delivered, two recolored when read.
func (mt *MessageThread) ticks(m store.Message) string {
	if m.SenderID != mt.selfID {
		return ""
	}
	switch {
	case m.Status.AtLeast(status.Read):
		return fmt.Sprintf(" [%s]✓✓[-]", readTickColor(mt.theme))
	case m.Status.AtLeast(status.Delivered):
		return " ✓✓"
	default:
		return " ✓"
	}
}

func readTickColor(t *ui.Theme) string {
	return fmt.Sprintf("#%06x", t.ReadTickColor.Hex())
}

// Composer returns the composer input field for focus management.
func (mt *MessageThread) Composer() *tview.InputField {
	return mt.composer
}
