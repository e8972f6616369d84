package tui

import "strings"

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

func (a *App) executeCommand(input string) {
	cmd := ParseCommand(input)

	switch cmd.Name {
	case "":
	case "q", "quit":
		a.Stop()
	case "h", "help":
		a.switchTo(pageHelp)
	case "chats":
		a.backend.SetActiveChat("")
		a.pages.Reset(pageChats)
		a.focusPage()
	case "status":
		a.switchTo(pageStatus)
	case "profile":
		a.switchTo(pageProfile)
	case "settings":
		a.switchTo(pageSettings)
	case "open":
		a.openChatByName(cmd.Args)
	case "theme":
		a.setTheme(cmd.Args)
	case "logout":
		a.doLogout()
	default:
		a.flash.Warn("unknown command: " + cmd.Name)
		a.statusBar.Refresh()
	}
}

// openChatByName opens the first chat whose display name contains the given
// text, case-insensitively.
func (a *App) openChatByName(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		a.flash.Warn("usage: open <name>")
		a.statusBar.Refresh()
		return
	}
	for _, chat := range a.backend.Chats() {
		if strings.Contains(strings.ToLower(chat.DisplayName()), name) {
			a.openChat(chat)
			return
		}
	}
	a.flash.Warn("no chat matching " + name)
	a.statusBar.Refresh()
}

// setTheme switches to the named theme, or toggles when no name is given.
func (a *App) setTheme(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		a.backend.ToggleTheme()
	case "dark", "light":
		if a.backend.Theme() != name {
			a.backend.ToggleTheme()
		}
	default:
		a.flash.Warn("usage: theme [dark|light]")
		a.statusBar.Refresh()
	}
}
