package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/tui/components"
	"github.com/ldevries/atelier/internal/tui/theme"
)

func (a App) renderTimelineTab(cw int) string {
	t := theme.Active
	now := time.Now()
	proj := a.doc.Project
	innerW := components.CardInnerWidth(cw)

	weekStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	currentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)

	barW := innerW - 40
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, wg := range a.weeks {
		marker := "  "
		label := weekStyle.Render(fmt.Sprintf("Week %d", wg.Week))
		if wg.Week == proj.CurrentWeek {
			marker = currentStyle.Render("> ")
			label = currentStyle.Render(fmt.Sprintf("Week %d", wg.Week))
		}
		if wg.Week > proj.TotalWeeks {
			label = mutedStyle.Render(fmt.Sprintf("Week %d (beyond plan)", wg.Week))
		}

		pct := 0.0
		if len(wg.Tasks) > 0 {
			pct = float64(wg.Done) / float64(len(wg.Tasks))
		}

		counts := dimStyle.Render(fmt.Sprintf("%d/%d done", wg.Done, len(wg.Tasks)))
		if wg.Overdue > 0 {
			counts += "  " + redStyle.Render(fmt.Sprintf("%d overdue", wg.Overdue))
		}

		b.WriteString(marker + label + "  " + components.ProgressBar(pct, barW) + "  " + counts)
		b.WriteString("\n")

		for _, task := range report.SortForWeek(wg.Tasks, now) {
			line := "    " + cli.FormatStatus(task.Status) + " " +
				mutedStyle.Render(cli.Truncate(sanitize.Text(task.Title), innerW-20))
			if report.IsOverdue(task, now) {
				line += " " + redStyle.Render(cli.FormatDue(task.DueDate, now))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if !proj.LaunchDate.IsZero() {
		days := report.DaysRemaining(proj.LaunchDate, now)
		launch := fmt.Sprintf("Launch %s", cli.FormatDate(proj.LaunchDate))
		switch {
		case days > 0:
			launch += fmt.Sprintf(" — %d %s to go", days, plural(days, "day", "days"))
		case days == 0:
			launch += " — today"
		default:
			launch += fmt.Sprintf(" — %d %s ago", -days, plural(-days, "day", "days"))
		}
		b.WriteString(currentStyle.Render(launch))
	}

	return components.ContentCard(
		fmt.Sprintf("Timeline (%d weeks)", proj.TotalWeeks),
		strings.TrimRight(b.String(), "\n"), cw)
}
