package tui

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs string
	}{
		{"quit", "quit", ""},
		{"q", "q", ""},
		{"OPEN sarah", "open", "sarah"},
		{"theme light", "theme", "light"},
		{"open  Family Group ", "open", "Family Group"},
		{"  help  ", "help", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.input)
		if got.Name != tt.wantName {
			t.Errorf("ParseCommand(%q).Name = %q, want %q", tt.input, got.Name, tt.wantName)
		}
		if got.Args != tt.wantArgs {
			t.Errorf("ParseCommand(%q).Args = %q, want %q", tt.input, got.Args, tt.wantArgs)
		}
	}
}
