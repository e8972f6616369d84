package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
	Numeric     bool // true for 0-9 shortcuts (displayed in a different color)
}

// Component is the interface every page of the shell implements.
type Component interface {
	Name() string
	Hints() []MenuHint
	ApplyTheme(t *Theme)
}
