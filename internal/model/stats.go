package model

// TaskStats holds the derived counts over a task list.
type TaskStats struct {
	Total           int
	NotStarted      int
	InProgress      int
	Done            int
	Overdue         int
	PercentComplete float64
}

// FinancialSummary holds derived sums over the payment list.
type FinancialSummary struct {
	Total      float64
	Paid       float64
	Unpaid     float64
	ByCategory map[string]float64
}

// BudgetStatus relates spending to the declared project budget.
type BudgetStatus struct {
	BudgetTotal float64
	Spent       float64
	Remaining   float64
	UsedPercent float64
}

// WeekGroup buckets tasks for a single timeline week.
type WeekGroup struct {
	Week    int
	Tasks   []Task
	Done    int
	Overdue int
}

// Notification is a contextual alert derived from document state.
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
}

// NotificationKind classifies notifications for rendering.
type NotificationKind string

const (
	NotifyOverdue  NotificationKind = "overdue"
	NotifyDeadline NotificationKind = "deadline"
	NotifyBudget   NotificationKind = "budget"
	NotifyPayment  NotificationKind = "payment"
)
