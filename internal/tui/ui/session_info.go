package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// SessionData holds the header summary for the active session.
type SessionData struct {
	Session string
	User    string
	Phone   string
	Chats   int
	Unread  int
	Theme   string
}

// SessionInfo displays session metadata in the header.
type SessionInfo struct {
	*tview.TextView
	theme *Theme
	data  SessionData
}

// NewSessionInfo creates a new session info panel.
func NewSessionInfo(theme *Theme) *SessionInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &SessionInfo{
		TextView: tv,
		theme:    theme,
	}
}

// ApplyTheme switches the palette and re-renders.
func (si *SessionInfo) ApplyTheme(t *Theme) {
	si.theme = t
	si.SetBackgroundColor(t.BgColor)
	si.render()
}

// Update renders the session summary.
func (si *SessionInfo) Update(data SessionData) {
	si.data = data
	si.render()
}

func (si *SessionInfo) render() {
	si.Clear()

	fgColor := colorName(si.theme.FgColor)
	counterColor := colorName(si.theme.CounterColor)

	phone := si.data.Phone
	if phone == "" {
		phone = "-"
	}

	text := fmt.Sprintf(
		"[%s::b]Session:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]User:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]Phone:[-:-:-]   [%s]%s[-]\n"+
			"[%s::b]Chats:[-:-:-]   [%s]%d[-]\n"+
			"[%s::b]Unread:[-:-:-]  [%s]%d[-]\n"+
			"[%s::b]Theme:[-:-:-]   [%s]%s[-]",
		fgColor, counterColor, si.data.Session,
		fgColor, counterColor, si.data.User,
		fgColor, counterColor, phone,
		fgColor, counterColor, si.data.Chats,
		fgColor, counterColor, si.data.Unread,
		fgColor, counterColor, si.data.Theme,
	)

	_, _ = fmt.Fprint(si, text)
}
