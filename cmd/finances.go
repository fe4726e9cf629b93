package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/validate"
)

var (
	flagPayCategory string
	flagPayDue      string
	flagPayPaid     bool
	flagPayNote     string
	flagBudgetSet   float64
)

var financesCmd = &cobra.Command{
	Use:     "finances",
	Aliases: []string{"fin"},
	Short:   "Payments and budget",
	RunE:    runFinancesList,
}

var financesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments with totals",
	RunE:  runFinancesList,
}

var financesAddCmd = &cobra.Command{
	Use:   "add <payee> <amount>",
	Short: "Record a payment",
	Args:  cobra.ExactArgs(2),
	RunE:  runFinancesAdd,
}

var financesPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark a payment paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runFinancesPay,
}

var financesBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or set the total budget",
	RunE:  runFinancesBudget,
}

func init() {
	financesAddCmd.Flags().StringVar(&flagPayCategory, "category", "general", "Payment category")
	financesAddCmd.Flags().StringVar(&flagPayDue, "due", "", "Due date (YYYY-MM-DD)")
	financesAddCmd.Flags().BoolVar(&flagPayPaid, "paid", false, "Mark as already paid")
	financesAddCmd.Flags().StringVar(&flagPayNote, "note", "", "Free-form note")
	financesBudgetCmd.Flags().Float64Var(&flagBudgetSet, "set", -1, "New total budget")

	financesCmd.AddCommand(financesListCmd, financesAddCmd, financesPayCmd, financesBudgetCmd)
	rootCmd.AddCommand(financesCmd)
}

func runFinancesList(_ *cobra.Command, _ []string) error {
	doc := loadDocument(openStore())
	now := time.Now()
	currency := doc.Project.Currency

	if len(doc.Payments) == 0 {
		fmt.Println("\n  No payments recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(doc.Payments))
	for _, p := range doc.Payments {
		paid := "unpaid"
		if p.Paid {
			paid = cli.GoodStyle.Render("paid")
		} else if !p.DueDate.IsZero() && !p.DueDate.After(model.DateOf(now)) {
			paid = cli.WarnStyle.Render("due")
		}
		rows = append(rows, []string{
			shortID(p.ID),
			cli.Truncate(sanitize.Text(p.Payee), 26),
			sanitize.Text(p.Category),
			cli.FormatMoney(currency, p.Amount),
			paid,
			cli.FormatDate(p.DueDate),
		})
	}

	summary := report.FinancialSummary(doc.Payments)
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", "", cli.FormatMoney(currency, summary.Total), "", ""})
	rows = append(rows, []string{"", "Paid", "", cli.FormatMoney(currency, summary.Paid), "", ""})
	rows = append(rows, []string{"", "Unpaid", "", cli.FormatMoney(currency, summary.Unpaid), "", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Payments",
		Headers:   []string{"ID", "Payee", "Category", "Amount", "Status", "Due"},
		Rows:      rows,
		AlignLeft: map[int]bool{1: true, 2: true, 4: true, 5: true},
	}))

	if len(summary.ByCategory) > 1 {
		cats := make([]string, 0, len(summary.ByCategory))
		for c := range summary.ByCategory {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		catRows := make([][]string, 0, len(cats))
		for _, c := range cats {
			catRows = append(catRows, []string{
				sanitize.Text(c),
				cli.FormatMoney(currency, summary.ByCategory[c]),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By category",
			Headers: []string{"Category", "Amount"},
			Rows:    catRows,
		}))
	}

	return nil
}

func runFinancesAdd(_ *cobra.Command, args []string) error {
	s := openStore()
	doc := loadDocument(s)

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount %q is not a number", args[1])
	}

	payment := model.Payment{
		ID:       model.NewID(),
		Payee:    args[0],
		Category: flagPayCategory,
		Amount:   amount,
		Paid:     flagPayPaid,
		Note:     flagPayNote,
	}
	if flagPayDue != "" {
		d, err := model.ParseDate(flagPayDue)
		if err != nil {
			return err
		}
		payment.DueDate = d
	}

	if err := validate.Payment(payment).Err(); err != nil {
		return err
	}

	doc.Payments = append(doc.Payments, payment)
	detail := fmt.Sprintf("%s %.2f", payment.Payee, payment.Amount)
	if err := saveDocument(s, doc, "payment", payment.ID, "add", detail); err != nil {
		return err
	}

	fmt.Printf("  Recorded %s to %s (%s)\n",
		cli.FormatMoney(doc.Project.Currency, payment.Amount),
		sanitize.Text(payment.Payee), shortID(payment.ID))
	return nil
}

func runFinancesPay(_ *cobra.Command, args []string) error {
	s := openStore()
	doc := loadDocument(s)

	payment := doc.Payment(args[0])
	if payment == nil {
		for i := range doc.Payments {
			if len(args[0]) >= 4 && len(doc.Payments[i].ID) >= len(args[0]) &&
				doc.Payments[i].ID[:len(args[0])] == args[0] {
				payment = &doc.Payments[i]
				break
			}
		}
	}
	if payment == nil {
		return fmt.Errorf("no payment with ID %q", args[0])
	}
	if payment.Paid {
		fmt.Println("  Already paid.")
		return nil
	}

	payment.Paid = true
	if err := saveDocument(s, doc, "payment", payment.ID, "pay", payment.Payee); err != nil {
		return err
	}

	fmt.Printf("  Paid %s to %s\n",
		cli.FormatMoney(doc.Project.Currency, payment.Amount),
		sanitize.Text(payment.Payee))
	return nil
}

func runFinancesBudget(cmd *cobra.Command, _ []string) error {
	s := openStore()
	doc := loadDocument(s)
	currency := doc.Project.Currency

	if cmd.Flags().Changed("set") {
		if err := validate.Amount("budget", flagBudgetSet); err != nil {
			return err
		}
		doc.Project.BudgetTotal = flagBudgetSet
		detail := fmt.Sprintf("%.2f", flagBudgetSet)
		if err := saveDocument(s, doc, "project", "", "update", "budget "+detail); err != nil {
			return err
		}
		fmt.Printf("  Budget set to %s\n", cli.FormatMoney(currency, flagBudgetSet))
		return nil
	}

	budget := report.BudgetStatus(report.FinancialSummary(doc.Payments), doc.Project.BudgetTotal)
	fmt.Println()
	fmt.Printf("  Budget:    %s\n", cli.FormatMoney(currency, budget.BudgetTotal))
	fmt.Printf("  Spent:     %s\n", cli.FormatMoney(currency, budget.Spent))
	fmt.Printf("  Remaining: %s\n", cli.FormatMoney(currency, budget.Remaining))
	fmt.Printf("  %s\n", cli.RenderBar(budget.UsedPercent/100, 30))
	return nil
}
