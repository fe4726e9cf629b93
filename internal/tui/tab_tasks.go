package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/tui/components"
	"github.com/ldevries/atelier/internal/tui/theme"
)

func (a App) renderTasksTab(cw int) string {
	t := theme.Active
	now := time.Now()
	tasks := a.visibleTasks()
	innerW := components.CardInnerWidth(cw)

	filterStyle := lipgloss.NewStyle().Foreground(t.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selectedStyle := lipgloss.NewStyle().Background(t.Surface)

	header := fmt.Sprintf("Tasks (%d)  filter: %s", len(tasks),
		filterStyle.Render(taskFilters[a.taskFilterIdx]))

	if len(tasks) == 0 {
		return components.ContentCard(header,
			dimStyle.Render("No tasks match. Press [a] to add one or [v] to change the filter."), cw)
	}

	titleW := innerW - 36
	if titleW < 16 {
		titleW = 16
	}

	var b strings.Builder
	for i, task := range tasks {
		cursor := "  "
		if i == a.taskCursor {
			cursor = cursorStyle.Render("> ")
		}

		title := textStyle.Render(fmt.Sprintf("%-*s", titleW, cli.Truncate(sanitize.Text(task.Title), titleW)))
		week := mutedStyle.Render(fmt.Sprintf("w%-2d", task.Week))
		prio := renderPriority(task.Priority)

		due := dimStyle.Render(fmt.Sprintf("%-14s", cli.FormatDate(task.DueDate)))
		if report.IsOverdue(task, now) {
			due = redStyle.Render(fmt.Sprintf("%-14s", cli.FormatDue(task.DueDate, now)))
		}

		line := cursor + cli.FormatStatus(task.Status) + " " + title + "  " + week + "  " + prio + "  " + due
		if i == a.taskCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Detail pane for the selected task
	if a.taskCursor < len(tasks) {
		sel := tasks[a.taskCursor]
		var d strings.Builder
		if sel.Assignee != "" {
			d.WriteString(mutedStyle.Render("Assignee: ") + textStyle.Render(sanitize.Text(sel.Assignee)) + "  ")
		}
		d.WriteString(mutedStyle.Render("Updated: ") + textStyle.Render(cli.FormatRelative(sel.UpdatedAt)))
		if sel.Notes != "" {
			d.WriteString("\n")
			d.WriteString(mutedStyle.Render(cli.Truncate(sanitize.Text(sel.Notes), innerW)))
		}
		b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
		b.WriteString("\n")
		b.WriteString(d.String())
	}

	return components.ContentCard(header, strings.TrimRight(b.String(), "\n"), cw)
}

func renderPriority(p model.Priority) string {
	t := theme.Active
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(t.Red).Render("high  ")
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(t.Yellow).Render("medium")
	default:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("low   ")
	}
}
