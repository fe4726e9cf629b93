package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
)

var (
	flagExportOutput string
	flagExportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the project document",
	Long:  "Export the document verbatim as JSON, or as a standalone HTML summary.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file (default stdout for json)")
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "json|html")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s := openStore()

	switch flagExportFormat {
	case "json":
		if flagExportOutput == "" {
			data, err := os.ReadFile(s.Path())
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("nothing to export: %s does not exist", s.Path())
				}
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := s.Export(flagExportOutput); err != nil {
			return err
		}
		fmt.Printf("  Exported to %s\n", flagExportOutput)
		return nil

	case "html":
		doc := loadDocument(s)
		html := renderHTML(doc, time.Now())
		if flagExportOutput == "" {
			fmt.Print(html)
			return nil
		}
		if err := os.WriteFile(flagExportOutput, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagExportOutput, err)
		}
		fmt.Printf("  Exported to %s\n", flagExportOutput)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want json or html)", flagExportFormat)
	}
}

// renderHTML builds a minimal standalone summary page. All user text goes
// through sanitize.HTML so markup in titles or names is shown literally.
func renderHTML(doc *model.Document, now time.Time) string {
	stats := report.TaskStats(doc.Tasks, now)
	finances := report.FinancialSummary(doc.Payments)
	currency := doc.Project.Currency

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", sanitize.HTML(doc.Project.Name))
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", sanitize.HTML(doc.Project.Name))
	fmt.Fprintf(&b, "<p>Week %d of %d · %d/%d tasks done (%s) · %s of %s spent</p>\n",
		doc.Project.CurrentWeek, doc.Project.TotalWeeks,
		stats.Done, stats.Total, cli.FormatPercent(stats.PercentComplete),
		sanitize.HTML(cli.FormatMoney(currency, finances.Paid)),
		sanitize.HTML(cli.FormatMoney(currency, doc.Project.BudgetTotal)))

	b.WriteString("<h2>Tasks</h2>\n<table border=\"1\">\n<tr><th>Task</th><th>Week</th><th>Status</th><th>Priority</th><th>Due</th></tr>\n")
	for _, t := range doc.Tasks {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			sanitize.HTML(t.Title), t.Week,
			sanitize.HTML(t.Status.Label()), sanitize.HTML(string(t.Priority)),
			sanitize.HTML(cli.FormatDate(t.DueDate)))
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Payments</h2>\n<table border=\"1\">\n<tr><th>Payee</th><th>Category</th><th>Amount</th><th>Paid</th></tr>\n")
	for _, p := range doc.Payments {
		paid := "no"
		if p.Paid {
			paid = "yes"
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			sanitize.HTML(p.Payee), sanitize.HTML(p.Category),
			sanitize.HTML(cli.FormatMoney(currency, p.Amount)), paid)
	}
	b.WriteString("</table>\n</body>\n</html>\n")

	return b.String()
}
