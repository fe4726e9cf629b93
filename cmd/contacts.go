package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/validate"
)

var (
	flagContactRole  string
	flagContactEmail string
	flagContactPhone string
	flagContactNotes string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Project contact list",
	RunE:  runContactsList,
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	RunE:  runContactsList,
}

var contactsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsAdd,
}

func init() {
	contactsAddCmd.Flags().StringVar(&flagContactRole, "role", "", "Role (designer, client, ...)")
	contactsAddCmd.Flags().StringVar(&flagContactEmail, "email", "", "Email address")
	contactsAddCmd.Flags().StringVar(&flagContactPhone, "phone", "", "Phone number")
	contactsAddCmd.Flags().StringVar(&flagContactNotes, "notes", "", "Free-form notes")

	contactsCmd.AddCommand(contactsListCmd, contactsAddCmd)
	rootCmd.AddCommand(contactsCmd)
}

func runContactsList(_ *cobra.Command, _ []string) error {
	doc := loadDocument(openStore())

	if len(doc.Contacts) == 0 {
		fmt.Println("\n  No contacts yet.")
		return nil
	}

	rows := make([][]string, 0, len(doc.Contacts))
	for _, c := range doc.Contacts {
		rows = append(rows, []string{
			cli.Truncate(sanitize.Text(c.Name), 24),
			sanitize.Text(c.Role),
			sanitize.Text(c.Email),
			sanitize.Text(c.Phone),
			cli.Truncate(sanitize.Text(c.Notes), 30),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Contacts",
		Headers:   []string{"Name", "Role", "Email", "Phone", "Notes"},
		Rows:      rows,
		AlignLeft: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}))
	return nil
}

func runContactsAdd(_ *cobra.Command, args []string) error {
	s := openStore()
	doc := loadDocument(s)

	contact := model.Contact{
		ID:    model.NewID(),
		Name:  args[0],
		Role:  flagContactRole,
		Email: flagContactEmail,
		Phone: flagContactPhone,
		Notes: flagContactNotes,
	}

	if err := validate.Contact(contact).Err(); err != nil {
		return err
	}

	doc.Contacts = append(doc.Contacts, contact)
	if err := saveDocument(s, doc, "contact", contact.ID, "add", contact.Name); err != nil {
		return err
	}

	fmt.Printf("  Added contact %s\n", sanitize.Text(contact.Name))
	return nil
}
