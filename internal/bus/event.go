package bus

import "time"

// Event kinds published by the app. Subscribers filter by namespace prefix,
// e.g. "message." receives both appended and status_changed.
const (
	KindMessageAppended      = "message.appended"
	KindMessageStatusChanged = "message.status_changed"
	KindChatUpdated          = "chat.updated"
	KindSessionAuthenticated = "session.authenticated"
	KindSessionLoggedOut     = "session.logged_out"
	KindThemeChanged         = "prefs.theme_changed"
)

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
