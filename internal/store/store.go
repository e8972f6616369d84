package store

import "sync"

// Store is the single source of truth for the session: the current user, the
// contact roster, groups, chats and stories. Everything is built in memory from
// fixture data at startup; nothing is persisted across runs.
//
// Chats are mutated exclusively through ApplyToChat. Transforms receive the
// chat by value and must clone the Messages slice before modifying it; returned
// chats replace the stored one wholesale, so snapshots handed out earlier keep
// observing consistent data.
type Store struct {
	mu         sync.RWMutex
	user       User
	contacts   []Contact
	groups     []Group
	chats      []Chat
	stories    []Story
	wallpapers []Wallpaper
}

// Dataset is the fixture data a Store is initialized from.
type Dataset struct {
	User       User
	Contacts   []Contact
	Groups     []Group
	Chats      []Chat
	Stories    []Story
	Wallpapers []Wallpaper
}

// New creates a store holding the given dataset.
func New(d Dataset) *Store {
	return &Store{
		user:       d.User,
		contacts:   d.Contacts,
		groups:     d.Groups,
		chats:      d.Chats,
		stories:    d.Stories,
		wallpapers: d.Wallpapers,
	}
}

// CurrentUser returns the authenticated user.
func (s *Store) CurrentUser() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Contacts returns a snapshot of the contact roster.
func (s *Store) Contacts() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Groups returns a snapshot of all groups.
func (s *Store) Groups() []Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// Stories returns a snapshot of the status story feed.
func (s *Store) Stories() []Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Story, len(s.stories))
	copy(out, s.stories)
	return out
}

// Wallpapers returns the available chat wallpapers.
func (s *Store) Wallpapers() []Wallpaper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Wallpaper, len(s.wallpapers))
	copy(out, s.wallpapers)
	return out
}

// Chats returns a snapshot of the full chat collection in insertion order.
func (s *Store) Chats() []Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Chat, len(s.chats))
	copy(out, s.chats)
	return out
}

// Chat returns the chat with the given id, if present.
func (s *Store) Chat(id string) (Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			return s.chats[i], true
		}
	}
	return Chat{}, false
}

// ApplyToChat locates the chat by id and replaces it with transform(chat),
// leaving all other chats untouched. An unknown id is a tolerated no-op (the
// UI may race a stale handle against a list refresh); the return value reports
// whether the transform was applied.
func (s *Store) ApplyToChat(id string, transform func(Chat) Chat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			s.chats[i] = transform(s.chats[i])
			return true
		}
	}
	return false
}

// RemoveChat deletes a chat from the collection. Unknown ids are a no-op.
func (s *Store) RemoveChat(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			return true
		}
	}
	return false
}

// DisplayNameFor resolves a user id to a display name across the current user
// and the roster, falling back to the id itself.
func (s *Store) DisplayNameFor(userID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if userID == s.user.ID {
		return s.user.Name
	}
	for i := range s.contacts {
		if s.contacts[i].ID == userID {
			return s.contacts[i].Name
		}
	}
	return userID
}
