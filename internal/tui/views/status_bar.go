package views

import (
	"fmt"
	"time"

	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar is the persistent bottom bar: session, logged-in user, clock and
// the current flash message.
type StatusBar struct {
	*tview.TextView
	theme   *ui.Theme
	session string
	user    string
	flash   *ui.FlashModel
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme, flash *ui.FlashModel) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)

	sb := &StatusBar{
		TextView: tv,
		theme:    theme,
		flash:    flash,
	}
	sb.ApplyTheme(theme)
	return sb
}

// ApplyTheme switches the palette and re-renders.
func (sb *StatusBar) ApplyTheme(t *ui.Theme) {
	sb.theme = t
	sb.SetBackgroundColor(t.CrumbInactiveBg)
	sb.SetTextColor(t.CrumbInactiveFg)
	sb.Refresh()
}

// SetSession updates the session name display.
func (sb *StatusBar) SetSession(name string) {
	sb.session = name
	sb.Refresh()
}

// SetUser updates the logged-in user display.
func (sb *StatusBar) SetUser(name string) {
	sb.user = name
	sb.Refresh()
}

// Refresh re-renders the bar, picking up clock and flash changes.
func (sb *StatusBar) Refresh() {
	sb.Clear()

	user := sb.user
	if user == "" {
		user = "signed out"
	}

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s | %s", sb.session, user, time.Now().Format("15:04"))
	if msg := sb.flash.Get(); msg != nil {
		var color string
		switch msg.Level {
		case ui.FlashWarn:
			color = fmt.Sprintf("#%06x", sb.theme.FlashWarnColor.Hex())
		case ui.FlashErr:
			color = fmt.Sprintf("#%06x", sb.theme.FlashErrColor.Hex())
		default:
			color = fmt.Sprintf("#%06x", sb.theme.FlashInfoColor.Hex())
		}
		line += fmt.Sprintf(" | [%s]%s[-]", color, tview.Escape(msg.Text))
	}

	_, _ = fmt.Fprint(sb, line)
}
