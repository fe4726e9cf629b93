package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/tui/components"
	"github.com/ldevries/atelier/internal/tui/theme"
)

func (a App) renderFinancesTab(cw int) string {
	t := theme.Active
	now := time.Now()
	proj := a.doc.Project
	fin := a.finances
	var b strings.Builder

	// Row 1: Totals
	metrics := []components.Metric{
		{Label: "Total", Value: cli.FormatMoney(proj.Currency, fin.Total),
			Sub: fmt.Sprintf("%d payments", len(a.doc.Payments))},
		{Label: "Paid", Value: cli.FormatMoney(proj.Currency, fin.Paid), Sub: ""},
		{Label: "Unpaid", Value: cli.FormatMoney(proj.Currency, fin.Unpaid), Sub: ""},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Budget bar
	if a.budget.BudgetTotal > 0 {
		innerW := components.CardInnerWidth(cw)
		barW := innerW - 12
		if barW < 10 {
			barW = 10
		}
		usedPct := a.budget.UsedPercent / 100
		body := components.LabeledBar("Used", usedPct, components.ColorForUsage(usedPct), 6, barW) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf(
				"%s remaining of %s",
				cli.FormatMoney(proj.Currency, a.budget.Remaining),
				cli.FormatMoney(proj.Currency, a.budget.BudgetTotal)))
		b.WriteString(components.ContentCard("Budget", body, cw))
		b.WriteString("\n")
	}

	// Row 3: Payment list next to category breakdown
	halves := components.LayoutRow(cw, 2)
	payCard := components.ContentCard(
		fmt.Sprintf("Payments (%d)", len(a.doc.Payments)),
		a.renderPaymentList(components.CardInnerWidth(halves[0]), now),
		halves[0],
	)
	catCard := components.ContentCard(
		"By Category",
		a.renderCategoryList(components.CardInnerWidth(halves[1])),
		halves[1],
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, payCard, catCard))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderPaymentList(w int, now time.Time) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	orangeStyle := lipgloss.NewStyle().Foreground(t.Orange)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	if len(a.doc.Payments) == 0 {
		return dimStyle.Render("No payments yet. Press [a] to add one.")
	}

	payeeW := w - 20
	if payeeW < 12 {
		payeeW = 12
	}

	var b strings.Builder
	for i, p := range a.doc.Payments {
		cursor := "  "
		if i == a.payCursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := orangeStyle.Render("○")
		if p.Paid {
			mark = greenStyle.Render("✓")
		}

		line := cursor + mark + " " +
			textStyle.Render(fmt.Sprintf("%-*s", payeeW, cli.Truncate(sanitize.Text(p.Payee), payeeW))) +
			" " + textStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(a.doc.Project.Currency, p.Amount)))
		b.WriteString(line)
		b.WriteString("\n")

		if i == a.payCursor && !p.DueDate.IsZero() {
			b.WriteString(dimStyle.Render("    due " + cli.FormatDate(p.DueDate) + " " + cli.FormatDue(p.DueDate, now)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderCategoryList(w int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.finances.ByCategory) == 0 {
		return dimStyle.Render("No categorized payments.")
	}

	cats := make([]string, 0, len(a.finances.ByCategory))
	for c := range a.finances.ByCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		return a.finances.ByCategory[cats[i]] > a.finances.ByCategory[cats[j]]
	})

	nameW := w - 16
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	for _, c := range cats {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", nameW, cli.Truncate(sanitize.Text(c), nameW))))
		b.WriteString(textStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(a.doc.Project.Currency, a.finances.ByCategory[c]))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
