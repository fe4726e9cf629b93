// Package model defines the typed records that make up a project document.
package model

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Status is a task's lifecycle state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists all valid statuses in lifecycle order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusDone}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Label returns a human-readable form of the status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Priority is a task's urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all valid priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// rank orders priorities for sorting; higher is more urgent.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	}
	return 0
}

// MoreUrgent reports whether p outranks other.
func (p Priority) MoreUrgent(other Priority) bool {
	return p.rank() > other.rank()
}

// Task is a single unit of project work. Tasks are created via a form,
// mutated in place by status and priority edits, and never hard-deleted
// in the normal flow.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Week      int       `json:"week"`
	Status    Status    `json:"status"`
	Priority  Priority  `json:"priority"`
	Assignee  string    `json:"assignee,omitempty"`
	DueDate   Date      `json:"due_date,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// NewID returns a fresh ULID for a record.
func NewID() string {
	return ulid.Make().String()
}

// Done reports whether the task is complete.
func (t Task) Done() bool {
	return t.Status == StatusDone
}
