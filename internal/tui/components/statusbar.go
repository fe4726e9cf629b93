package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// an optional toast message on the right.
func RenderStatusBar(width int, toast string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)
	toastStyle := lipgloss.NewStyle().Foreground(t.Green)

	left := " [a]dd  [enter]advance  [?]help  [q]uit"
	right := ""
	if toast != "" {
		right = toastStyle.Render(toast) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
