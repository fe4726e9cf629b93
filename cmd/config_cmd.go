package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data file:    %s\n", dataFilePath())
	fmt.Printf("    Currency:     %s\n", cfg.General.Currency)
	fmt.Printf("    Total weeks:  %d\n", cfg.General.TotalWeeks)
	fmt.Printf("    Journal:      %v\n", cfg.General.Journal)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}
