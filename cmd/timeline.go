package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Week-by-week task breakdown",
	RunE:  runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(_ *cobra.Command, _ []string) error {
	doc := loadDocument(openStore())
	now := time.Now()

	groups := report.WeekGroups(doc.Tasks, doc.Project.TotalWeeks, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s — %d week plan",
		sanitize.Text(doc.Project.Name), doc.Project.TotalWeeks)))
	fmt.Println()

	for _, g := range groups {
		marker := "  "
		if g.Week == doc.Project.CurrentWeek {
			marker = "> "
		}

		header := fmt.Sprintf("%sWeek %d", marker, g.Week)
		if len(g.Tasks) == 0 {
			fmt.Printf("%s — no tasks\n\n", header)
			continue
		}

		pct := float64(g.Done) / float64(len(g.Tasks))
		fmt.Printf("%s — %d/%d done  %s", header, g.Done, len(g.Tasks), cli.RenderBar(pct, 20))
		if g.Overdue > 0 {
			fmt.Printf("  %s", cli.Warnf("%d overdue", g.Overdue))
		}
		fmt.Println()

		for _, t := range report.SortForWeek(g.Tasks, now) {
			line := fmt.Sprintf("    %s %s", cli.FormatStatus(t.Status), cli.Truncate(sanitize.Text(t.Title), 50))
			if !t.DueDate.IsZero() {
				line += "  " + cli.FormatDue(t.DueDate, now)
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	return nil
}
