package store

import (
	"time"

	"github.com/hugup/hugup/internal/status"
)

// User is the authenticated account holder. Exactly one exists per session.
type User struct {
	ID       string
	Name     string
	Phone    string
	Avatar   string
	About    string
	Online   bool
	LastSeen time.Time
}

// Contact is another party in the roster. Same shape as User; reference data
// that is never mutated after seeding.
type Contact User

// Group is a multi-party conversation target.
type Group struct {
	ID          string
	Name        string
	Avatar      string
	Description string
	Members     []string
	Admins      []string
	CreatedAt   time.Time
}

// ChatKind discriminates the chat variant.
type ChatKind string

const (
	ChatIndividual ChatKind = "individual"
	ChatGroup      ChatKind = "group"
)

// MessageKind is the payload type of a message or story.
type MessageKind string

const (
	MessageText     MessageKind = "text"
	MessageImage    MessageKind = "image"
	MessageVoice    MessageKind = "voice"
	MessageDocument MessageKind = "document"
)

// Message is one entry in a chat's conversation sequence. IDs are unique
// within their chat. Status only ever moves forward (sent -> delivered -> read).
type Message struct {
	ID        string
	SenderID  string
	Kind      MessageKind
	Text      string
	MediaURL  string
	Timestamp time.Time
	Status    status.Status
}

// LastMessage is the cached summary of the tail of a chat's message sequence.
type LastMessage struct {
	Text      string
	Timestamp time.Time
	SenderID  string
}

// Chat is a conversation thread. Exactly one of Contact or Group is set,
// matching Kind. Messages are append-only; LastMessage always summarizes the
// most recently appended message.
type Chat struct {
	ID          string
	Kind        ChatKind
	Contact     *Contact
	Group       *Group
	Messages    []Message
	LastMessage *LastMessage
	UnreadCount int
	Pinned      bool
	Muted       bool
}

// DisplayName resolves the name to show for the chat, falling back to the id.
func (c *Chat) DisplayName() string {
	switch c.Kind {
	case ChatGroup:
		if c.Group != nil {
			return c.Group.Name
		}
	case ChatIndividual:
		if c.Contact != nil {
			return c.Contact.Name
		}
	}
	return c.ID
}

// DisplayAvatar resolves the avatar reference for the chat.
func (c *Chat) DisplayAvatar() string {
	switch c.Kind {
	case ChatGroup:
		if c.Group != nil {
			return c.Group.Avatar
		}
	case ChatIndividual:
		if c.Contact != nil {
			return c.Contact.Avatar
		}
	}
	return ""
}

// StoryContent is the payload of a story: an image, or styled text on a
// background color.
type StoryContent struct {
	Kind            MessageKind
	URL             string
	Text            string
	BackgroundColor string
}

// Story is an ephemeral status update posted by a user. Read-only sample data.
type Story struct {
	ID        string
	UserID    string
	Content   StoryContent
	Timestamp time.Time
	Views     []string
	Viewed    bool
}

// Wallpaper is a selectable chat background, shown in settings.
type Wallpaper struct {
	ID      string
	Name    string
	Preview string
	URL     string
}
