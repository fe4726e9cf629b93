// Package cmd implements the atelier CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/config"
	"github.com/ldevries/atelier/internal/journal"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/store"
)

var (
	flagDataFile string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Project dashboard CLI",
	Long:  "Track tasks, payments, and timelines for a small project from one JSON document.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Project document path (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings on stderr")
}

// dataFilePath resolves the document path: flag, then config, then default.
func dataFilePath() string {
	if flagDataFile != "" {
		return flagDataFile
	}
	cfg, _ := config.Load()
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile
	}
	return config.DefaultDataFile()
}

// openStore returns the store bound to the resolved data file.
func openStore() *store.Store {
	return store.New(dataFilePath())
}

// loadDocument is the shared load path used by all commands. Corruption
// and schema warnings go to stderr; the command continues with whatever
// document Load produced.
func loadDocument(s *store.Store) *model.Document {
	result, err := s.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Warning: %v\n  Starting from an empty document.\n", err)
	}
	if !flagQuiet {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "  Schema warning: %s\n", w)
		}
	}
	return result.Doc
}

// saveDocument persists the document and journals the mutation.
// Journal failures are ignored; a save failure is the caller's error.
func saveDocument(s *store.Store, doc *model.Document, entity, entityID, action, detail string) error {
	if err := s.Save(doc); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	recordMutation(entity, entityID, action, detail)
	return nil
}

// recordMutation appends to the journal, best-effort.
func recordMutation(entity, entityID, action, detail string) {
	cfg, _ := config.Load()
	if !cfg.General.Journal {
		return
	}
	j, err := journal.Open(config.DefaultJournalFile())
	if err != nil {
		return
	}
	defer func() { _ = j.Close() }()
	_ = j.Record(entity, entityID, action, detail)
}
