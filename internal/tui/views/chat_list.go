package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hugup/hugup/internal/chatlist"
	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatList is the conversation table: filter tabs, text search and the
// pinned-first recency ordering.
type ChatList struct {
	*tview.Table
	theme   *ui.Theme
	chats   []store.Chat
	visible []store.Chat
	filter  chatlist.Filter
	query   string
}

// NewChatList creates a new chat list table.
func NewChatList(theme *ui.Theme) *ChatList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)

	cl := &ChatList{
		Table:  table,
		theme:  theme,
		filter: chatlist.FilterAll,
	}
	cl.ApplyTheme(theme)
	return cl
}

// Name implements Component.
func (cl *ChatList) Name() string { return "Chats" }

// Hints implements Component.
func (cl *ChatList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open chat"},
		{Key: "/", Description: "Search"},
		{Key: "1-4", Description: "All/Unread/Groups/Contacts", Numeric: true},
		{Key: "p", Description: "Pin/unpin"},
		{Key: "m", Description: "Mute/unmute"},
		{Key: "s", Description: "Status feed"},
		{Key: "u", Description: "Profile"},
		{Key: "o", Description: "Settings"},
	}
}

// ApplyTheme implements Component.
func (cl *ChatList) ApplyTheme(t *ui.Theme) {
	cl.theme = t
	cl.SetBorderColor(t.BorderColor)
	cl.SetBackgroundColor(t.BgColor)
	cl.SetTitleColor(t.TitleColor)
	cl.SetSelectedStyle(tcell.StyleDefault.
		Foreground(t.TableCursorFg).
		Background(t.TableCursorBg))
	cl.render()
}

// Update replaces the chat snapshot and re-renders.
func (cl *ChatList) Update(chats []store.Chat) {
	cl.chats = chats
	cl.render()
}

// SetFilter switches the active type filter.
func (cl *ChatList) SetFilter(f chatlist.Filter) {
	cl.filter = f
	cl.render()
}

// Filter returns the active type filter.
func (cl *ChatList) Filter() chatlist.Filter { return cl.filter }

// SetQuery sets the search query (empty clears it).
func (cl *ChatList) SetQuery(q string) {
	cl.query = q
	cl.render()
}

// Query returns the active search query.
func (cl *ChatList) Query() string { return cl.query }

func (cl *ChatList) render() {
	cl.visible = chatlist.Select(cl.chats, cl.query, cl.filter)
	cl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" NAME", 1},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
		{" TYPE", 0},
	}
	for col, h := range headers {
		cell := tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp)
		cl.SetCell(0, col, cell)
	}

	for i, chat := range cl.visible {
		row := i + 1

		name := chat.DisplayName()
		nameColor := cl.theme.FgColor
		if chat.Pinned {
			name = "* " + name
			nameColor = cl.theme.PinColor
		}
		if chat.UnreadCount > 0 {
			name = fmt.Sprintf("%s (%d)", name, chat.UnreadCount)
			nameColor = cl.theme.UnreadColor
		}
		if chat.Muted {
			name += " [muted]"
		}

		preview := ""
		lastAt := ""
		if chat.LastMessage != nil {
			preview = chat.LastMessage.Text
			lastAt = formatTimestamp(chat.LastMessage.Timestamp)
		}

		chatType := "DM"
		if chat.Kind == store.ChatGroup {
			chatType = "GROUP"
		}

		cl.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(name))).
			SetExpansion(1).SetTextColor(nameColor))
		cl.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(preview))).
			SetExpansion(2).SetTextColor(cl.theme.FgColor))
		cl.SetCell(row, 2, tview.NewTableCell(lastAt).
			SetTextColor(cl.theme.DimFgColor).SetAlign(tview.AlignRight))
		cl.SetCell(row, 3, tview.NewTableCell(chatType).
			SetTextColor(cl.theme.DimFgColor).SetAlign(tview.AlignRight))
	}

	title := fmt.Sprintf(" Chats [%s] (%d/%d) ", cl.filter, len(cl.visible), len(cl.chats))
	if cl.query != "" {
		title = fmt.Sprintf(" Chats [%s] (%d/%d) /%s ", cl.filter, len(cl.visible), len(cl.chats), cl.query)
	}
	cl.SetTitle(title)
}

// SelectedChat returns the chat under the cursor.
func (cl *ChatList) SelectedChat() (store.Chat, bool) {
	row, _ := cl.GetSelection()
	idx := row - 1 // header row
	if idx < 0 || idx >= len(cl.visible) {
		return store.Chat{}, false
	}
	return cl.visible[idx], true
}
