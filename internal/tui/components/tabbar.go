package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // keyboard shortcut, highlighted when it appears in the name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Tasks", Key: 't'},
	{Name: "Finances", Key: 'f'},
	{Name: "Timeline", Key: 'l'},
	{Name: "Contacts", Key: 'c'},
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	bracketStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}

		// Highlight the shortcut letter where it occurs in the name
		pos := strings.IndexRune(strings.ToLower(tab.Name), tab.Key)
		if pos < 0 {
			parts = append(parts, inactiveStyle.Render(tab.Name)+
				bracketStyle.Render("[")+keyStyle.Render(string(tab.Key))+bracketStyle.Render("]"))
			continue
		}
		parts = append(parts, inactiveStyle.Render(tab.Name[:pos])+
			bracketStyle.Render("[")+keyStyle.Render(string(tab.Name[pos]))+bracketStyle.Render("]")+
			inactiveStyle.Render(tab.Name[pos+1:]))
	}

	return " " + strings.Join(parts, "  ")
}
