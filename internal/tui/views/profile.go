package views

import (
	"fmt"

	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// Profile shows the current user's account details.
type Profile struct {
	*tview.TextView
	theme *ui.Theme
	user  store.User
}

// NewProfile creates a new profile view.
func NewProfile(theme *ui.Theme) *Profile {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderPadding(1, 1, 2, 2)
	tv.SetTitle(" Profile ")

	p := &Profile{
		TextView: tv,
		theme:    theme,
	}
	p.ApplyTheme(theme)
	return p
}

// Name implements Component.
func (p *Profile) Name() string { return "Profile" }

// Hints implements Component.
func (p *Profile) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements Component.
func (p *Profile) ApplyTheme(t *ui.Theme) {
	p.theme = t
	p.SetBorderColor(t.BorderColor)
	p.SetBackgroundColor(t.BgColor)
	p.SetTextColor(t.FgColor)
	p.SetTitleColor(t.TitleColor)
	p.render()
}

// Update replaces the displayed user and re-renders.
func (p *Profile) Update(user store.User) {
	p.user = user
	p.render()
}

func (p *Profile) render() {
	p.Clear()
	if p.user.ID == "" {
		return
	}

	presence := "offline"
	if p.user.Online {
		presence = "online"
	} else if !p.user.LastSeen.IsZero() {
		presence = "last seen " + formatTimestamp(p.user.LastSeen)
	}

	_, _ = fmt.Fprintf(p,
		"%s  [::b]%s[-:-:-]\n\n"+
			"Phone:  %s\n"+
			"About:  %s\n"+
			"Status: %s\n",
		sanitizeForTerminal(p.user.Avatar),
		tview.Escape(sanitizeForTerminal(p.user.Name)),
		p.user.Phone,
		tview.Escape(sanitizeForTerminal(p.user.About)),
		presence,
	)
}
