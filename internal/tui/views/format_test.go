package views

import (
	"testing"
	"time"

	"github.com/hugup/hugup/internal/store"
)

func TestFormatTimestamp(t *testing.T) {
	now := time.Now()

	if got := formatTimestamp(time.Time{}); got != "" {
		t.Errorf("zero time = %q, want empty", got)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, time.Local)
	if got := formatTimestamp(today); got != "09:30" {
		t.Errorf("today = %q, want %q", got, "09:30")
	}

	older := now.AddDate(0, 0, -30)
	if got := formatTimestamp(older); got != older.Format("01/02") {
		t.Errorf("older = %q, want %q", got, older.Format("01/02"))
	}
}

func TestMessageBody(t *testing.T) {
	tests := []struct {
		name string
		msg  store.Message
		want string
	}{
		{"text", store.Message{Kind: store.MessageText, Text: "hey"}, "hey"},
		{"image with caption", store.Message{Kind: store.MessageImage, Text: "look", MediaURL: "x.jpg"}, "(photo) look"},
		{"image bare", store.Message{Kind: store.MessageImage, MediaURL: "x.jpg"}, "(photo)"},
		{"voice", store.Message{Kind: store.MessageVoice, MediaURL: "v.ogg"}, "(voice message)"},
		{"document", store.Message{Kind: store.MessageDocument, Text: "cv.pdf"}, "(document) cv.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := messageBody(tt.msg); got != tt.want {
				t.Errorf("messageBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeForTerminal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"skin tone stripped", "\U0001F44D\U0001F3FB", "\U0001F44D"},
		{"zwj stripped", "a\u200db", "ab"},
		{"variation selector stripped", "\u2764\ufe0f", "\u2764"},
		{"plain emoji kept", "\U0001F600", "\U0001F600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeForTerminal(tt.input); got != tt.want {
				t.Errorf("sanitizeForTerminal(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
