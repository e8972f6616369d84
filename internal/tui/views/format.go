package views

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hugup/hugup/internal/store"
)

// formatTimestamp renders a message time compactly: clock time for today,
// month/day otherwise.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("01/02")
}

// messageBody renders the display text for a message, substituting a label
// for media payloads.
func messageBody(m store.Message) string {
	switch m.Kind {
	case store.MessageImage:
		if m.Text != "" {
			return "(photo) " + m.Text
		}
		return "(photo)"
	case store.MessageVoice:
		return "(voice message)"
	case store.MessageDocument:
		if m.Text != "" {
			return "(document) " + m.Text
		}
		return "(document)"
	default:
		return m.Text
	}
}

// problematicRanges lists codepoints tcell renders at the wrong cell width
// when they appear in composed emoji sequences: skin tone modifiers, the zero
// width joiner and variation selectors.
var problematicRanges = [...][2]rune{
	{0x1F3FB, 0x1F3FF},
	{0x200D, 0x200D},
	{0xFE00, 0xFE0F},
	{0xE0100, 0xE01EF},
}

// sanitizeForTerminal strips codepoints that break terminal rendering, so
// e.g. a skin-toned thumbs up falls back to the plain two-cell glyph.
func sanitizeForTerminal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isProblematicRune(r) {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func isProblematicRune(r rune) bool {
	for _, rng := range problematicRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
