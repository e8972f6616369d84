package tui

import "github.com/hugup/hugup/internal/store"

// Backend is the application surface the UI renders from. The app state type
// satisfies it; the UI never touches the store or pipeline directly.
type Backend interface {
	SessionName() string
	CurrentUser() store.User
	Chats() []store.Chat
	Contacts() []store.Contact
	Stories() []store.Story
	Wallpapers() []store.Wallpaper
	DisplayNameFor(userID string) string

	ActiveChatID() string
	ActiveChat() (store.Chat, bool)
	SetActiveChat(id string)
	SendMessage(chatID, text string) error
	TogglePin(chatID string)
	ToggleMute(chatID string)

	Theme() string
	ToggleTheme() string

	Authenticated() bool
	Login(phone string) error
	Logout() error
}
