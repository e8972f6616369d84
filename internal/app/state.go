package app

import (
	"sync"

	"github.com/hugup/hugup/internal/bus"
	"github.com/hugup/hugup/internal/config"
	"github.com/hugup/hugup/internal/pipeline"
	"github.com/hugup/hugup/internal/session"
	"github.com/hugup/hugup/internal/store"
	"go.uber.org/zap"
)

// Theme names accepted in config and flipped by ToggleTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// State is the application facade the UI talks to: read access to the store,
// the active chat, the theme preference, the session flag and the send entry
// point. All chat mutations flow through the store's ApplyToChat, so the UI
// never writes fields directly.
type State struct {
	mu sync.RWMutex

	sessionName string
	store       *store.Store
	pipeline    *pipeline.Pipeline
	bus         *bus.Bus
	logger      *zap.Logger

	authFlagPath string
	configPath   string
	cfg          *config.Config

	activeChatID string
	theme        string
}

// StateParams names the session and optionally overrides the files the state
// touches (overrides are for tests; empty = session defaults).
type StateParams struct {
	SessionName  string
	AuthFlagPath string
	ConfigPath   string
}

// NewState creates the app state for a session.
func NewState(p StateParams, st *store.Store, pl *pipeline.Pipeline, b *bus.Bus, cfg *config.Config, logger *zap.Logger) *State {
	theme := cfg.Theme
	if theme != ThemeLight && theme != ThemeDark {
		theme = ThemeDark
	}
	flagPath := p.AuthFlagPath
	if flagPath == "" {
		flagPath = session.AuthFlagPath(p.SessionName)
	}
	cfgPath := p.ConfigPath
	if cfgPath == "" {
		cfgPath = session.ConfigPath()
	}
	return &State{
		sessionName:  p.SessionName,
		store:        st,
		pipeline:     pl,
		bus:          b,
		logger:       logger,
		authFlagPath: flagPath,
		configPath:   cfgPath,
		cfg:          cfg,
		theme:        theme,
	}
}

// SessionName returns the active session name.
func (s *State) SessionName() string { return s.sessionName }

// CurrentUser returns the authenticated user.
func (s *State) CurrentUser() store.User { return s.store.CurrentUser() }

// Chats returns a snapshot of the full chat collection.
func (s *State) Chats() []store.Chat { return s.store.Chats() }

// Contacts returns the contact roster.
func (s *State) Contacts() []store.Contact { return s.store.Contacts() }

// Stories returns the status story feed.
func (s *State) Stories() []store.Story { return s.store.Stories() }

// Wallpapers returns the wallpaper catalog.
func (s *State) Wallpapers() []store.Wallpaper { return s.store.Wallpapers() }

// DisplayNameFor resolves a user id to a display name.
func (s *State) DisplayNameFor(userID string) string { return s.store.DisplayNameFor(userID) }

// ActiveChatID returns the currently open chat id, or empty.
func (s *State) ActiveChatID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeChatID
}

// ActiveChat resolves the active chat against the store. A stale active id
// simply reports no chat.
func (s *State) ActiveChat() (store.Chat, bool) {
	s.mu.RLock()
	id := s.activeChatID
	s.mu.RUnlock()
	if id == "" {
		return store.Chat{}, false
	}
	return s.store.Chat(id)
}

// SetActiveChat opens a chat (empty id closes the active one). Opening a chat
// clears its unread count.
func (s *State) SetActiveChat(id string) {
	s.mu.Lock()
	s.activeChatID = id
	s.mu.Unlock()

	if id == "" {
		return
	}
	if s.store.ApplyToChat(id, func(c store.Chat) store.Chat {
		c.UnreadCount = 0
		return c
	}) {
		s.bus.Emit(bus.KindChatUpdated, id)
	}
}

// TogglePin flips the pinned flag on a chat. Unknown ids are ignored.
func (s *State) TogglePin(chatID string) {
	if s.store.ApplyToChat(chatID, func(c store.Chat) store.Chat {
		c.Pinned = !c.Pinned
		return c
	}) {
		s.bus.Emit(bus.KindChatUpdated, chatID)
	}
}

// ToggleMute flips the muted flag on a chat. Unknown ids are ignored.
func (s *State) ToggleMute(chatID string) {
	if s.store.ApplyToChat(chatID, func(c store.Chat) store.Chat {
		c.Muted = !c.Muted
		return c
	}) {
		s.bus.Emit(bus.KindChatUpdated, chatID)
	}
}

// SendMessage feeds an outgoing message from the current user into the
// pipeline.
func (s *State) SendMessage(chatID, text string) error {
	_, err := s.pipeline.Send(chatID, s.store.CurrentUser().ID, text)
	return err
}

// Theme returns the current theme name.
func (s *State) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between light and dark, persists the preference and
// returns the new theme name.
func (s *State) ToggleTheme() string {
	s.mu.Lock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	next := s.theme
	s.cfg.Theme = next
	s.mu.Unlock()

	if err := config.Save(s.configPath, s.cfg); err != nil {
		s.logger.Warn("failed to persist theme", zap.Error(err))
	}
	s.bus.Emit(bus.KindThemeChanged, next)
	return next
}

// Authenticated reports whether the session flag is set.
func (s *State) Authenticated() bool {
	return session.IsAuthenticated(s.authFlagPath)
}

// Login marks the session authenticated. The phone number is display-only;
// any code is accepted by the mock flow.
func (s *State) Login(phone string) error {
	if err := session.MarkAuthenticated(s.authFlagPath); err != nil {
		return err
	}
	s.logger.Info("logged in", zap.String("phone", phone))
	s.bus.Emit(bus.KindSessionAuthenticated, phone)
	return nil
}

// Logout clears the session flag and closes the active chat.
func (s *State) Logout() error {
	if err := session.ClearAuthenticated(s.authFlagPath); err != nil {
		return err
	}
	s.mu.Lock()
	s.activeChatID = ""
	s.mu.Unlock()
	s.logger.Info("logged out")
	s.bus.Emit(bus.KindSessionLoggedOut, nil)
	return nil
}
