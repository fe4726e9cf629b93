package report

import (
	"fmt"
	"time"

	"github.com/ldevries/atelier/internal/model"
)

// deadlineWindowDays is how far ahead upcoming-deadline alerts look.
const deadlineWindowDays = 3

// budgetAlertPercent is the budget utilization that triggers an alert.
const budgetAlertPercent = 90

// Notifications derives contextual alerts from document state: overdue
// tasks, deadlines landing within the next few days, high budget use, and
// unpaid payments already due.
func Notifications(doc *model.Document, now time.Time) []model.Notification {
	var notes []model.Notification
	today := model.DateOf(now)

	overdue := 0
	upcoming := 0
	for _, t := range doc.Tasks {
		if IsOverdue(t, now) {
			overdue++
			continue
		}
		if t.Done() || t.DueDate.IsZero() {
			continue
		}
		if d := today.DaysUntil(t.DueDate); d >= 0 && d <= deadlineWindowDays {
			upcoming++
		}
	}

	if overdue > 0 {
		notes = append(notes, model.Notification{
			Kind:    model.NotifyOverdue,
			Title:   fmt.Sprintf("%d overdue %s", overdue, plural(overdue, "task", "tasks")),
			Message: fmt.Sprintf("%d %s past the deadline.", overdue, plural(overdue, "task is", "tasks are")),
		})
	}
	if upcoming > 0 {
		notes = append(notes, model.Notification{
			Kind:    model.NotifyDeadline,
			Title:   "Deadlines approaching",
			Message: fmt.Sprintf("%d %s due within %d days.", upcoming, plural(upcoming, "task is", "tasks are"), deadlineWindowDays),
		})
	}

	budget := BudgetStatus(FinancialSummary(doc.Payments), doc.Project.BudgetTotal)
	if budget.BudgetTotal > 0 && budget.UsedPercent > budgetAlertPercent {
		notes = append(notes, model.Notification{
			Kind:    model.NotifyBudget,
			Title:   "Budget alert",
			Message: fmt.Sprintf("%.1f%% of the budget is spent.", budget.UsedPercent),
		})
	}

	duePayments := 0
	for _, p := range doc.Payments {
		if !p.Paid && !p.DueDate.IsZero() && !p.DueDate.After(today) {
			duePayments++
		}
	}
	if duePayments > 0 {
		notes = append(notes, model.Notification{
			Kind:    model.NotifyPayment,
			Title:   "Payments due",
			Message: fmt.Sprintf("%d unpaid %s reached the due date.", duePayments, plural(duePayments, "payment has", "payments have")),
		})
	}

	return notes
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
