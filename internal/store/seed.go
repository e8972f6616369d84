package store

import (
	"time"

	"github.com/hugup/hugup/internal/status"
)

// Seed builds the fixture dataset the app boots with: one account, four
// contacts, three groups, three chats with history, a story feed and the
// wallpaper catalog. Timestamps are relative to now so the chat list always
// looks freshly active.
func Seed() Dataset {
	now := time.Now()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	user := User{
		ID:       "1",
		Name:     "You",
		Phone:    "+1 234 567 8900",
		Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
		About:    "Available",
		Online:   true,
		LastSeen: now,
	}

	contacts := []Contact{
		{
			ID:       "2",
			Name:     "Sarah Johnson",
			Phone:    "+1 234 567 8901",
			Avatar:   "https://images.pexels.com/photos/8005453/pexels-photo-8005453.jpeg",
			About:    "Busy with work",
			LastSeen: ago(5 * time.Minute),
		},
		{
			ID:       "3",
			Name:     "Mike Chen",
			Phone:    "+1 234 567 8902",
			Avatar:   "https://images.pexels.com/photos/32181768/pexels-photo-32181768.jpeg",
			About:    "At the gym 💪",
			Online:   true,
			LastSeen: now,
		},
		{
			ID:       "4",
			Name:     "Emily Rodriguez",
			Phone:    "+1 234 567 8903",
			Avatar:   "https://images.unsplash.com/photo-1724435811349-32d27f4d5806",
			About:    "Coffee lover ☕",
			LastSeen: ago(30 * time.Minute),
		},
		{
			ID:       "5",
			Name:     "David Wilson",
			Phone:    "+1 234 567 8904",
			Avatar:   "https://images.unsplash.com/photo-1725131481715-f0aa4357665d",
			About:    "Traveling 🌍",
			LastSeen: ago(2 * time.Hour),
		},
	}

	groups := []Group{
		{
			ID:          "group1",
			Name:        "Family Group",
			Avatar:      "https://images.pexels.com/photos/32200925/pexels-photo-32200925.jpeg",
			Description: "Family chat group",
			Members:     []string{"1", "2", "3", "4", "5"},
			Admins:      []string{"1"},
			CreatedAt:   ago(30 * 24 * time.Hour),
		},
		{
			ID:          "group2",
			Name:        "Work Team",
			Avatar:      "https://images.pexels.com/photos/32199948/pexels-photo-32199948.jpeg",
			Description: "Project discussion group",
			Members:     []string{"1", "2", "3"},
			Admins:      []string{"1", "2"},
			CreatedAt:   ago(7 * 24 * time.Hour),
		},
		{
			ID:          "group3",
			Name:        "College Friends",
			Avatar:      "https://images.pexels.com/photos/32199937/pexels-photo-32199937.jpeg",
			Description: "Old college buddies reunion",
			Members:     []string{"1", "3", "4", "5"},
			Admins:      []string{"3"},
			CreatedAt:   ago(365 * 24 * time.Hour),
		},
	}

	chats := []Chat{
		{
			ID:      "2",
			Kind:    ChatIndividual,
			Contact: &contacts[0],
			Messages: []Message{
				{ID: "m1", SenderID: "2", Kind: MessageText, Text: "Hey! How are you doing?", Timestamp: ago(time.Hour), Status: status.Read},
				{ID: "m2", SenderID: "1", Kind: MessageText, Text: "I'm doing great! Just finished a project. What about you?", Timestamp: ago(58 * time.Minute), Status: status.Read},
				{ID: "m3", SenderID: "2", Kind: MessageText, Text: "That's awesome! I'm swamped with work but doing well 😊", Timestamp: ago(5 * time.Minute), Status: status.Delivered},
			},
			UnreadCount: 1,
			LastMessage: &LastMessage{
				Text:      "That's awesome! I'm swamped with work but doing well 😊",
				Timestamp: ago(5 * time.Minute),
				SenderID:  "2",
			},
		},
		{
			ID:      "3",
			Kind:    ChatIndividual,
			Contact: &contacts[1],
			Messages: []Message{
				{ID: "m4", SenderID: "3", Kind: MessageText, Text: "Want to grab lunch tomorrow?", Timestamp: ago(2 * time.Hour), Status: status.Read},
				{ID: "m5", SenderID: "1", Kind: MessageText, Text: "Sure! How about 12:30 at the usual place?", Timestamp: ago(118 * time.Minute), Status: status.Read},
				{ID: "m6", SenderID: "3", Kind: MessageText, Text: "Perfect! See you there 👍", Timestamp: ago(116 * time.Minute), Status: status.Read},
			},
			LastMessage: &LastMessage{
				Text:      "Perfect! See you there 👍",
				Timestamp: ago(116 * time.Minute),
				SenderID:  "3",
			},
			Pinned: true,
		},
		{
			ID:    "group1",
			Kind:  ChatGroup,
			Group: &groups[0],
			Messages: []Message{
				{ID: "m7", SenderID: "2", Kind: MessageText, Text: "Planning the weekend trip!", Timestamp: ago(30 * time.Minute), Status: status.Read},
				{ID: "m8", SenderID: "3", Kind: MessageText, Text: "Count me in! Where are we going?", Timestamp: ago(28 * time.Minute), Status: status.Read},
				{ID: "m9", SenderID: "1", Kind: MessageText, Text: "How about the beach house? It's perfect this time of year 🏖️", Timestamp: ago(26 * time.Minute), Status: status.Read},
			},
			UnreadCount: 2,
			LastMessage: &LastMessage{
				Text:      "How about the beach house? It's perfect this time of year 🏖️",
				Timestamp: ago(26 * time.Minute),
				SenderID:  "1",
			},
		},
	}

	stories := []Story{
		{
			ID:     "s1",
			UserID: "2",
			Content: StoryContent{
				Kind: MessageImage,
				URL:  "https://images.pexels.com/photos/950241/pexels-photo-950241.jpeg",
				Text: "Beautiful sunset today! 🌅",
			},
			Timestamp: ago(time.Hour),
			Views:     []string{"1", "3", "4"},
			Viewed:    true,
		},
		{
			ID:     "s2",
			UserID: "3",
			Content: StoryContent{
				Kind:            MessageText,
				Text:            "Just finished an amazing workout! 💪 Feeling energized!",
				BackgroundColor: "#25D366",
			},
			Timestamp: ago(2 * time.Hour),
			Views:     []string{"1", "2"},
		},
		{
			ID:     "s3",
			UserID: "4",
			Content: StoryContent{
				Kind: MessageImage,
				URL:  "https://images.pexels.com/photos/532566/pexels-photo-532566.jpeg",
				Text: "Coffee time! ☕",
			},
			Timestamp: ago(3 * time.Hour),
			Views:     []string{"1"},
			Viewed:    true,
		},
	}

	wallpapers := []Wallpaper{
		{ID: "w1", Name: "Default", Preview: "https://images.pexels.com/photos/911738/pexels-photo-911738.jpeg", URL: "https://images.pexels.com/photos/911738/pexels-photo-911738.jpeg"},
		{ID: "w2", Name: "Abstract Blue", Preview: "https://images.pexels.com/photos/2911521/pexels-photo-2911521.jpeg", URL: "https://images.pexels.com/photos/2911521/pexels-photo-2911521.jpeg"},
		{ID: "w3", Name: "Geometric", Preview: "https://images.pexels.com/photos/1629236/pexels-photo-1629236.jpeg", URL: "https://images.pexels.com/photos/1629236/pexels-photo-1629236.jpeg"},
		{ID: "w4", Name: "Minimalist", Preview: "https://images.unsplash.com/photo-1487700160041-babef9c3cb55", URL: "https://images.unsplash.com/photo-1487700160041-babef9c3cb55"},
	}

	return Dataset{
		User:       user,
		Contacts:   contacts,
		Groups:     groups,
		Chats:      chats,
		Stories:    stories,
		Wallpapers: wallpapers,
	}
}
