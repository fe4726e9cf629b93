// Package report computes derived read-only values over a project document:
// task counts, financial sums, overdue flags, and date deltas. Every function
// is pure and takes the current time explicitly, so results are deterministic
// for a given document and clock.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/ldevries/atelier/internal/model"
)

// TaskStats counts tasks per status and computes percent complete.
// Percent complete is done/total*100, or 0 when there are no tasks.
func TaskStats(tasks []model.Task, now time.Time) model.TaskStats {
	var stats model.TaskStats
	stats.Total = len(tasks)

	for _, t := range tasks {
		switch t.Status {
		case model.StatusDone:
			stats.Done++
		case model.StatusInProgress:
			stats.InProgress++
		default:
			stats.NotStarted++
		}
		if IsOverdue(t, now) {
			stats.Overdue++
		}
	}

	if stats.Total > 0 {
		stats.PercentComplete = float64(stats.Done) / float64(stats.Total) * 100
	}
	return stats
}

// IsOverdue reports whether a task's due date has passed while the task is
// not done. Tasks due today or later, tasks without a due date, and done
// tasks are never overdue.
func IsOverdue(t model.Task, now time.Time) bool {
	if t.Done() || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(model.DateOf(now))
}

// DaysRemaining returns the signed whole-day difference from today to
// target. Zero when target is today, negative when it has passed.
func DaysRemaining(target model.Date, now time.Time) int {
	return model.DateOf(now).DaysUntil(target)
}

// FinancialSummary sums payment amounts: total, paid, unpaid, and grouped
// sums by category.
func FinancialSummary(payments []model.Payment) model.FinancialSummary {
	summary := model.FinancialSummary{
		ByCategory: make(map[string]float64),
	}
	for _, p := range payments {
		summary.Total += p.Amount
		if p.Paid {
			summary.Paid += p.Amount
		} else {
			summary.Unpaid += p.Amount
		}
		summary.ByCategory[p.Category] += p.Amount
	}
	return summary
}

// BudgetStatus relates paid-out money to the declared budget. UsedPercent
// is 0 when no budget is set.
func BudgetStatus(summary model.FinancialSummary, budgetTotal float64) model.BudgetStatus {
	status := model.BudgetStatus{
		BudgetTotal: budgetTotal,
		Spent:       summary.Paid,
		Remaining:   budgetTotal - summary.Paid,
	}
	if budgetTotal > 0 {
		status.UsedPercent = summary.Paid / budgetTotal * 100
	}
	return status
}

// WeekGroups buckets tasks by week for the timeline view. Every week in
// [1, totalWeeks] appears even when empty; tasks with weeks outside that
// range, high or low, are appended as extra trailing groups.
func WeekGroups(tasks []model.Task, totalWeeks int, now time.Time) []model.WeekGroup {
	if totalWeeks < 1 {
		totalWeeks = 1
	}

	byWeek := make(map[int]*model.WeekGroup)
	for w := 1; w <= totalWeeks; w++ {
		byWeek[w] = &model.WeekGroup{Week: w}
	}

	for _, t := range tasks {
		g, ok := byWeek[t.Week]
		if !ok {
			g = &model.WeekGroup{Week: t.Week}
			byWeek[t.Week] = g
		}
		g.Tasks = append(g.Tasks, t)
		if t.Done() {
			g.Done++
		}
		if IsOverdue(t, now) {
			g.Overdue++
		}
	}

	groups := make([]model.WeekGroup, 0, len(byWeek))
	for _, g := range byWeek {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		inRangeI := groups[i].Week >= 1 && groups[i].Week <= totalWeeks
		inRangeJ := groups[j].Week >= 1 && groups[j].Week <= totalWeeks
		if inRangeI != inRangeJ {
			return inRangeI
		}
		return groups[i].Week < groups[j].Week
	})
	return groups
}

// SortForWeek orders a week's tasks for display: overdue first, then by
// priority descending, then by due date.
func SortForWeek(tasks []model.Task, now time.Time) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		oi, oj := IsOverdue(sorted[i], now), IsOverdue(sorted[j], now)
		if oi != oj {
			return oi
		}
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority.MoreUrgent(sorted[j].Priority)
		}
		if sorted[i].DueDate.IsZero() != sorted[j].DueDate.IsZero() {
			return !sorted[i].DueDate.IsZero()
		}
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})
	return sorted
}

// FilterTasks returns the tasks matching a named filter: "all", "pending"
// (not done), "done", "overdue", or "week" (current week).
func FilterTasks(tasks []model.Task, filter string, currentWeek int, now time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		switch filter {
		case "", "all":
			out = append(out, t)
		case "pending":
			if !t.Done() {
				out = append(out, t)
			}
		case "done":
			if t.Done() {
				out = append(out, t)
			}
		case "overdue":
			if IsOverdue(t, now) {
				out = append(out, t)
			}
		case "week":
			if t.Week == currentWeek {
				out = append(out, t)
			}
		}
	}
	return out
}

// Suggest returns titles of existing tasks that share a keyword with the
// given input, for the add-task form. Input shorter than three characters
// yields nothing.
func Suggest(input string, tasks []model.Task, limit int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) < 3 || limit <= 0 {
		return nil
	}

	var out []string
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), input) {
			out = append(out, t.Title)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
