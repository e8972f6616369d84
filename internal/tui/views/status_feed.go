package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusFeed lists the ephemeral status stories posted by contacts. Unviewed
// stories render highlighted, mirroring the ring indicator of the mobile app.
type StatusFeed struct {
	*tview.Table
	theme   *ui.Theme
	stories []store.Story
	resolve func(userID string) string
}

// NewStatusFeed creates a new status feed table.
func NewStatusFeed(theme *ui.Theme, resolve func(userID string) string) *StatusFeed {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetTitle(" Status ")

	sf := &StatusFeed{
		Table:   table,
		theme:   theme,
		resolve: resolve,
	}
	sf.ApplyTheme(theme)
	return sf
}

// Name implements Component.
func (sf *StatusFeed) Name() string { return "Status" }

// Hints implements Component.
func (sf *StatusFeed) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// ApplyTheme implements Component.
func (sf *StatusFeed) ApplyTheme(t *ui.Theme) {
	sf.theme = t
	sf.SetBorderColor(t.BorderColor)
	sf.SetBackgroundColor(t.BgColor)
	sf.SetTitleColor(t.TitleColor)
	sf.SetSelectedStyle(tcell.StyleDefault.
		Foreground(t.TableCursorFg).
		Background(t.TableCursorBg))
	sf.render()
}

// Update replaces the story snapshot and re-renders.
func (sf *StatusFeed) Update(stories []store.Story) {
	sf.stories = stories
	sf.render()
}

func (sf *StatusFeed) render() {
	sf.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" POSTED BY", 1},
		{" STORY", 2},
		{" TIME", 0},
		{" VIEWS", 0},
	}
	for col, h := range headers {
		cell := tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(sf.theme.TableHeaderFg).
			SetBackgroundColor(sf.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp)
		sf.SetCell(0, col, cell)
	}

	for i, story := range sf.stories {
		row := i + 1

		name := story.UserID
		if sf.resolve != nil {
			name = sf.resolve(story.UserID)
		}
		nameColor := sf.theme.UnreadColor
		if story.Viewed {
			nameColor = sf.theme.DimFgColor
		} else {
			name = "* " + name
		}

		sf.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(name))).
			SetExpansion(1).SetTextColor(nameColor))
		sf.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(storySummary(story)))).
			SetExpansion(2).SetTextColor(sf.theme.FgColor))
		sf.SetCell(row, 2, tview.NewTableCell(formatTimestamp(story.Timestamp)).
			SetTextColor(sf.theme.DimFgColor).SetAlign(tview.AlignRight))
		sf.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%d", len(story.Views))).
			SetTextColor(sf.theme.DimFgColor).SetAlign(tview.AlignRight))
	}

	sf.SetTitle(fmt.Sprintf(" Status (%d) ", len(sf.stories)))
}

// storySummary renders a one-line description of the story content.
func storySummary(s store.Story) string {
	switch s.Content.Kind {
	case store.MessageImage:
		return "(photo story)"
	default:
		return s.Content.Text
	}
}
