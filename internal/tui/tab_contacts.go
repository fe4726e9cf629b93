package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/tui/components"
	"github.com/ldevries/atelier/internal/tui/theme"
)

func (a App) renderContactsTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	roleStyle := lipgloss.NewStyle().Foreground(t.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.doc.Contacts) == 0 {
		return components.ContentCard("Contacts",
			dimStyle.Render("No contacts yet. Press [a] to add one."), cw)
	}

	var b strings.Builder
	for _, c := range a.doc.Contacts {
		line := nameStyle.Render(sanitize.Text(c.Name))
		if c.Role != "" {
			line += "  " + roleStyle.Render(sanitize.Text(c.Role))
		}
		b.WriteString(line)
		b.WriteString("\n")

		var details []string
		if c.Email != "" {
			details = append(details, sanitize.Text(c.Email))
		}
		if c.Phone != "" {
			details = append(details, sanitize.Text(c.Phone))
		}
		if len(details) > 0 {
			b.WriteString(mutedStyle.Render("  " + strings.Join(details, "  ·  ")))
			b.WriteString("\n")
		}
		if c.Notes != "" {
			b.WriteString(dimStyle.Render("  " + cli.Truncate(sanitize.Text(c.Notes), innerW-2)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return components.ContentCard(
		fmt.Sprintf("Contacts (%d)", len(a.doc.Contacts)),
		strings.TrimRight(b.String(), "\n"), cw)
}
