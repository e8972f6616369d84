package views

import (
	"fmt"

	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// Help displays the key binding reference.
type Help struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelp creates a new help view.
func NewHelp(theme *ui.Theme) *Help {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetTitle(" Help ")

	h := &Help{
		TextView: tv,
		theme:    theme,
	}
	h.ApplyTheme(theme)
	return h
}

// Name implements Component.
func (h *Help) Name() string { return "Help" }

// Hints implements Component.
func (h *Help) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements Component.
func (h *Help) ApplyTheme(t *ui.Theme) {
	h.theme = t
	h.SetBorderColor(t.BorderColor)
	h.SetBackgroundColor(t.BgColor)
	h.SetTextColor(t.FgColor)
	h.SetTitleColor(t.TitleColor)
	h.render()
}

func (h *Help) render() {
	h.Clear()
	kc := fmt.Sprintf("#%06x", h.theme.MenuKeyColor.Hex())

	help := fmt.Sprintf(`
  [::b]Global Keys[-:-:-]

  [%s]:[-:-:-]    Command mode        [%s]Esc[-:-:-]    Cancel / Go back
  [%s]?[-:-:-]    Help                [%s]q[-:-:-]      Quit
  [%s]t[-:-:-]    Toggle theme        [%s]Ctrl-C[-:-:-] Quit immediately

  [::b]Chat List[-:-:-]

  [%s]Enter[-:-:-]  Open chat          [%s]/[-:-:-]      Search chats
  [%s]1-4[-:-:-]    Filter tab         [%s]p[-:-:-]      Pin / unpin
  [%s]m[-:-:-]      Mute / unmute      [%s]j/k[-:-:-]    Move down / up
  [%s]s[-:-:-]      Status feed        [%s]u[-:-:-]      Profile
  [%s]o[-:-:-]      Settings

  [::b]Message Thread[-:-:-]

  [%s]i[-:-:-]    Focus composer      [%s]Enter[-:-:-]  Send message (in composer)
  [%s]Esc[-:-:-]  Exit composer / back

  [::b]Commands (: mode)[-:-:-]

  [%s]:chats[-:-:-]              Go to the chat list
  [%s]:status[-:-:-]             Open the status feed
  [%s]:profile[-:-:-]            Open your profile
  [%s]:settings[-:-:-]           Open settings
  [%s]:open <name>[-:-:-]        Open chat by name
  [%s]:theme [dark|light][-:-:-] Switch theme
  [%s]:logout[-:-:-]             Log out of this session
  [%s]:help[-:-:-] / [%s]:h[-:-:-]        Show this help
  [%s]:quit[-:-:-] / [%s]:q[-:-:-]        Quit
`,
		kc, kc, kc, kc, kc, kc,
		kc, kc, kc, kc, kc, kc, kc, kc, kc,
		kc, kc, kc,
		kc, kc, kc, kc, kc, kc, kc, kc, kc, kc, kc,
	)

	_, _ = fmt.Fprint(h, help)
}
