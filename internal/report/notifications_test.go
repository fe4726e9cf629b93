package report

import (
	"testing"

	"github.com/ldevries/atelier/internal/model"
)

func kinds(notes []model.Notification) map[model.NotificationKind]bool {
	out := make(map[model.NotificationKind]bool)
	for _, n := range notes {
		out[n.Kind] = true
	}
	return out
}

func TestNotifications_CleanDocument(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{Name: "p", CurrentWeek: 1, TotalWeeks: 6},
		Tasks: []model.Task{
			{Title: "a", Week: 1, Status: model.StatusNotStarted},
		},
	}

	if notes := Notifications(doc, testNow); len(notes) != 0 {
		t.Errorf("Notifications = %d, want none: %+v", len(notes), notes)
	}
}

func TestNotifications_OverdueAndUpcoming(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{CurrentWeek: 1, TotalWeeks: 6},
		Tasks: []model.Task{
			{Title: "late", Week: 1, Status: model.StatusNotStarted, DueDate: day(-2)},
			{Title: "soon", Week: 1, Status: model.StatusNotStarted, DueDate: day(2)},
			{Title: "far", Week: 2, Status: model.StatusNotStarted, DueDate: day(30)},
		},
	}

	got := kinds(Notifications(doc, testNow))
	if !got[model.NotifyOverdue] {
		t.Error("missing overdue notification")
	}
	if !got[model.NotifyDeadline] {
		t.Error("missing deadline notification")
	}
	if got[model.NotifyBudget] || got[model.NotifyPayment] {
		t.Errorf("unexpected kinds: %v", got)
	}
}

func TestNotifications_BudgetAlert(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{BudgetTotal: 1000},
		Payments: []model.Payment{
			{Payee: "venue", Amount: 950, Paid: true},
		},
	}

	got := kinds(Notifications(doc, testNow))
	if !got[model.NotifyBudget] {
		t.Error("expected budget alert above 90% utilization")
	}

	// Exactly at the threshold stays quiet
	doc.Payments[0].Amount = 900
	got = kinds(Notifications(doc, testNow))
	if got[model.NotifyBudget] {
		t.Error("unexpected budget alert at exactly 90%")
	}
}

func TestNotifications_PaymentsDue(t *testing.T) {
	doc := &model.Document{
		Payments: []model.Payment{
			{Payee: "printer", Amount: 10, Paid: false, DueDate: day(0)},
			{Payee: "florist", Amount: 10, Paid: true, DueDate: day(-3)},
			{Payee: "band", Amount: 10, Paid: false, DueDate: day(5)},
		},
	}

	got := kinds(Notifications(doc, testNow))
	if !got[model.NotifyPayment] {
		t.Error("expected payment-due notification for unpaid payment due today")
	}
}
