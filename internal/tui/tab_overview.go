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

func (a App) renderOverviewTab(cw int) string {
	now := time.Now()
	proj := a.doc.Project
	var b strings.Builder

	// Row 1: Metric cards
	launchSub := "no launch date"
	if !proj.LaunchDate.IsZero() {
		days := report.DaysRemaining(proj.LaunchDate, now)
		switch {
		case days > 0:
			launchSub = fmt.Sprintf("%d %s left", days, plural(days, "day", "days"))
		case days == 0:
			launchSub = "launch is today"
		default:
			launchSub = fmt.Sprintf("%d %s past", -days, plural(-days, "day", "days"))
		}
	}

	overdueSub := "on track"
	if a.stats.Overdue > 0 {
		overdueSub = fmt.Sprintf("%d overdue", a.stats.Overdue)
	}

	metrics := []components.Metric{
		{Label: "Week", Value: fmt.Sprintf("%d / %d", proj.CurrentWeek, proj.TotalWeeks), Sub: launchSub},
		{Label: "Tasks", Value: fmt.Sprintf("%d / %d", a.stats.Done, a.stats.Total), Sub: overdueSub},
		{Label: "Progress", Value: cli.FormatPercent(a.stats.PercentComplete),
			Sub: fmt.Sprintf("%d in progress", a.stats.InProgress)},
		{Label: "Spent", Value: cli.FormatMoney(proj.Currency, a.finances.Paid),
			Sub: cli.FormatMoney(proj.Currency, a.finances.Unpaid) + " unpaid"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Progress + budget bars
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 22
	if barW < 10 {
		barW = 10
	}
	var bars strings.Builder
	taskPct := a.stats.PercentComplete / 100
	bars.WriteString(components.LabeledBar("Tasks", taskPct, components.ColorForCompletion(taskPct), 10, barW))
	if a.budget.BudgetTotal > 0 {
		usedPct := a.budget.UsedPercent / 100
		bars.WriteString("\n")
		bars.WriteString(components.LabeledBar("Budget", usedPct, components.ColorForUsage(usedPct), 10, barW))
	}
	b.WriteString(components.ContentCard("Progress", bars.String(), cw))
	b.WriteString("\n")

	// Row 3: This week's tasks next to notifications
	halves := components.LayoutRow(cw, 2)
	weekCard := components.ContentCard(
		fmt.Sprintf("Week %d Tasks", proj.CurrentWeek),
		a.renderWeekTaskList(components.CardInnerWidth(halves[0]), now),
		halves[0],
	)
	notifCard := components.ContentCard(
		"Notifications",
		a.renderNotificationList(components.CardInnerWidth(halves[1])),
		halves[1],
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, weekCard, notifCard))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderWeekTaskList(w int, now time.Time) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)

	tasks := report.SortForWeek(a.doc.TasksForWeek(a.doc.Project.CurrentWeek), now)
	if len(tasks) == 0 {
		return dimStyle.Render("Nothing scheduled this week.")
	}

	var b strings.Builder
	for i, task := range tasks {
		if i >= 8 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… and %d more", len(tasks)-i)))
			break
		}
		line := cli.FormatStatus(task.Status) + " " + textStyle.Render(cli.Truncate(sanitize.Text(task.Title), w-12))
		if report.IsOverdue(task, now) {
			line += " " + redStyle.Render("!")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderNotificationList(w int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.notifications) == 0 {
		return dimStyle.Render("All clear.")
	}

	kindStyles := map[model.NotificationKind]lipgloss.Style{
		model.NotifyOverdue:  lipgloss.NewStyle().Foreground(t.Red),
		model.NotifyDeadline: lipgloss.NewStyle().Foreground(t.Orange),
		model.NotifyBudget:   lipgloss.NewStyle().Foreground(t.Yellow),
		model.NotifyPayment:  lipgloss.NewStyle().Foreground(t.Blue),
	}
	msgStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, n := range a.notifications {
		if i >= 6 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… and %d more", len(a.notifications)-i)))
			break
		}
		ks, ok := kindStyles[n.Kind]
		if !ok {
			ks = msgStyle
		}
		b.WriteString(ks.Render("▲ " + n.Title))
		b.WriteString("\n")
		b.WriteString(msgStyle.Render("  " + cli.Truncate(n.Message, w-2)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
