package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/message"
)

var flagAudience string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Generate a ready-to-send weekly status message",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&flagAudience, "audience", "client", "client|designer")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	doc := loadDocument(openStore())

	aud, err := message.ParseAudience(flagAudience)
	if err != nil {
		return err
	}

	msg, err := message.Generate(doc, aud, time.Now())
	if err != nil {
		return err
	}

	fmt.Println(msg)
	return nil
}
