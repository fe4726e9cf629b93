package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Project overview: tasks, money, this week",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	doc := loadDocument(openStore())
	now := time.Now()

	stats := report.TaskStats(doc.Tasks, now)
	finances := report.FinancialSummary(doc.Payments)
	budget := report.BudgetStatus(finances, doc.Project.BudgetTotal)
	currency := doc.Project.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  Week %d of %d",
		sanitize.Text(doc.Project.Name), doc.Project.CurrentWeek, doc.Project.TotalWeeks)))
	fmt.Println()

	if !doc.Project.LaunchDate.IsZero() {
		days := report.DaysRemaining(doc.Project.LaunchDate, now)
		switch {
		case days > 0:
			fmt.Printf("  Launch in %d days (%s)\n\n", days, doc.Project.LaunchDate)
		case days == 0:
			fmt.Println("  Launch day is today!")
			fmt.Println()
		default:
			fmt.Printf("  Launched %d days ago\n\n", -days)
		}
	}

	rows := [][]string{
		{"Tasks", cli.FormatNumber(int64(stats.Total))},
		{"Done", cli.FormatNumber(int64(stats.Done))},
		{"In progress", cli.FormatNumber(int64(stats.InProgress))},
		{"Not started", cli.FormatNumber(int64(stats.NotStarted))},
		{"Overdue", cli.FormatNumber(int64(stats.Overdue))},
		{"Complete", cli.FormatPercent(stats.PercentComplete)},
		{"---"},
		{"Budget", cli.FormatMoney(currency, budget.BudgetTotal)},
		{"Paid out", cli.FormatMoney(currency, finances.Paid)},
		{"Unpaid", cli.FormatMoney(currency, finances.Unpaid)},
		{"Budget used", cli.FormatPercent(budget.UsedPercent)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	weekTasks := report.SortForWeek(doc.TasksForWeek(doc.Project.CurrentWeek), now)
	if len(weekTasks) > 0 {
		taskRows := make([][]string, 0, len(weekTasks))
		for _, t := range weekTasks {
			taskRows = append(taskRows, []string{
				cli.Truncate(sanitize.Text(t.Title), 40),
				cli.FormatStatus(t.Status),
				string(t.Priority),
				cli.FormatDue(t.DueDate, now),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:     fmt.Sprintf("This week (week %d)", doc.Project.CurrentWeek),
			Headers:   []string{"Task", "Status", "Priority", "Due"},
			Rows:      taskRows,
			AlignLeft: map[int]bool{1: true, 2: true, 3: true},
		}))
	}

	for _, n := range report.Notifications(doc, now) {
		fmt.Printf("\n  %s\n", cli.Warnf("%s — %s", n.Title, n.Message))
	}

	return nil
}
