package views

import (
	"fmt"

	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// Settings is the settings page: theme toggle, chat wallpaper selection and
// logout.
type Settings struct {
	*tview.List
	theme      *ui.Theme
	themeName  string
	wallpapers []store.Wallpaper
	wallpaper  int

	onToggleTheme func()
	onLogout      func()
}

// NewSettings creates a new settings view.
func NewSettings(theme *ui.Theme) *Settings {
	list := tview.NewList().
		ShowSecondaryText(true)
	list.SetBorder(true)
	list.SetTitle(" Settings ")

	s := &Settings{
		List:  list,
		theme: theme,
	}
	s.ApplyTheme(theme)

	list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		s.activate(index)
	})

	return s
}

// Name implements Component.
func (s *Settings) Name() string { return "Settings" }

// Hints implements Component.
func (s *Settings) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements Component.
func (s *Settings) ApplyTheme(t *ui.Theme) {
	s.theme = t
	s.SetBorderColor(t.BorderColor)
	s.SetBackgroundColor(t.BgColor)
	s.SetMainTextColor(t.FgColor)
	s.SetSecondaryTextColor(t.DimFgColor)
	s.SetTitleColor(t.TitleColor)
	s.SetSelectedTextColor(t.TableCursorFg)
	s.SetSelectedBackgroundColor(t.TableCursorBg)
	s.render()
}

// SetOnToggleTheme sets the callback for the theme row.
func (s *Settings) SetOnToggleTheme(fn func()) { s.onToggleTheme = fn }

// SetOnLogout sets the callback for the logout row.
func (s *Settings) SetOnLogout(fn func()) { s.onLogout = fn }

// Update replaces the wallpaper catalog and current theme name.
func (s *Settings) Update(themeName string, wallpapers []store.Wallpaper) {
	s.themeName = themeName
	s.wallpapers = wallpapers
	if s.wallpaper >= len(wallpapers) {
		s.wallpaper = 0
	}
	s.render()
}

// Wallpaper returns the currently selected wallpaper, if any.
func (s *Settings) Wallpaper() (store.Wallpaper, bool) {
	if s.wallpaper < 0 || s.wallpaper >= len(s.wallpapers) {
		return store.Wallpaper{}, false
	}
	return s.wallpapers[s.wallpaper], true
}

func (s *Settings) render() {
	index := s.GetCurrentItem()
	s.Clear()

	s.AddItem("Theme", fmt.Sprintf("current: %s", s.themeName), 't', nil)

	wallpaper := "none"
	if w, ok := s.Wallpaper(); ok {
		wallpaper = w.Name
	}
	s.AddItem("Chat wallpaper", fmt.Sprintf("current: %s (%d available)", wallpaper, len(s.wallpapers)), 'w', nil)

	s.AddItem("Log out", "clears the saved login for this session", 'l', nil)

	if index >= 0 && index < s.GetItemCount() {
		s.SetCurrentItem(index)
	}
}

// activate handles Enter on a settings row. The wallpaper row cycles through
// the catalog.
func (s *Settings) activate(index int) {
	switch index {
	case 0:
		if s.onToggleTheme != nil {
			s.onToggleTheme()
		}
	case 1:
		if len(s.wallpapers) > 0 {
			s.wallpaper = (s.wallpaper + 1) % len(s.wallpapers)
			s.render()
		}
	case 2:
		if s.onLogout != nil {
			s.onLogout()
		}
	}
}
