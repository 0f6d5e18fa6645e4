package cli

import "strings"

// Toolbar keys. The popover form switches on tea.KeyType instead so typed
// letters never collide with these.
const (
	KeyQuit      = "q"
	KeyForceQuit = "ctrl+c"
	KeyLeft      = "left"
	KeyLeftAlt   = "h"
	KeyRight     = "right"
	KeyRightAlt  = "l"
	KeyTab       = "tab"
	KeyEnter     = "enter"
)

type HelpItem struct {
	Key  string
	Desc string
}

func BuildHelpText(items []HelpItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Key + " " + item.Desc
	}
	return HelpStyle.Render("  " + strings.Join(parts, "  "))
}

var (
	HelpNav    = HelpItem{Key: "←/→", Desc: "navigate"}
	HelpEnter  = HelpItem{Key: "Enter", Desc: "select"}
	HelpSubmit = HelpItem{Key: "Enter", Desc: "submit"}
	HelpEsc    = HelpItem{Key: "Esc", Desc: "close"}
	HelpClear  = HelpItem{Key: "Ctrl+U", Desc: "clear"}
	HelpQuit   = HelpItem{Key: "q", Desc: "quit"}
)
