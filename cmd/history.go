package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/config"
	"github.com/ldevries/atelier/internal/journal"
	"github.com/ldevries/atelier/internal/sanitize"
)

var flagHistoryCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recent document mutations",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryCount, "count", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	j, err := journal.Open(config.DefaultJournalFile())
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer func() { _ = j.Close() }()

	entries, err := j.Recent(flagHistoryCount)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("\n  No recorded mutations yet.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.At.Local().Format(time.DateTime),
			e.Entity,
			e.Action,
			cli.Truncate(sanitize.Text(e.Detail), 40),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "History",
		Headers:   []string{"When", "Entity", "Action", "Detail"},
		Rows:      rows,
		AlignLeft: map[int]bool{1: true, 2: true, 3: true},
	}))
	return nil
}
