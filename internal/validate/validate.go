// Package validate checks form input at the boundary. Records that fail
// validation are rejected before anything is persisted.
package validate

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ldevries/atelier/internal/model"
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Collector accumulates field errors without failing on the first one, so
// a form can show everything wrong at once. Warnings are advisory and do
// not block the submission.
type Collector struct {
	errors   []FieldError
	warnings []string
}

// Add appends a field error if non-nil.
func (c *Collector) Add(err *FieldError) {
	if err != nil {
		c.errors = append(c.errors, *err)
	}
}

// Warn appends an advisory message.
func (c *Collector) Warn(msg string) {
	c.warnings = append(c.warnings, msg)
}

// HasErrors reports whether any blocking errors were collected.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Errors returns all collected field errors.
func (c *Collector) Errors() []FieldError {
	return c.errors
}

// Warnings returns all collected advisory messages.
func (c *Collector) Warnings() []string {
	return c.warnings
}

// Err returns a single error summarizing the collected failures, or nil.
func (c *Collector) Err() error {
	if !c.HasErrors() {
		return nil
	}
	msgs := make([]string, len(c.errors))
	for i, e := range c.errors {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

// Required rejects empty or whitespace-only values.
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	return nil
}

// Text rejects values that are not valid UTF-8 or contain NUL bytes.
func Text(field, value string) *FieldError {
	if !utf8.ValidString(value) {
		return &FieldError{Field: field, Message: "must be valid UTF-8"}
	}
	if strings.ContainsRune(value, 0) {
		return &FieldError{Field: field, Message: "must not contain null bytes"}
	}
	return nil
}

// MaxLen rejects values longer than max bytes.
func MaxLen(field, value string, max int) *FieldError {
	if len(value) > max {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}

// Amount rejects payment amounts outside [0, MaxPaymentAmount]. The upper
// bound is inclusive: exactly 10,000,000 is accepted.
func Amount(field string, amount float64) *FieldError {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &FieldError{Field: field, Message: "must be a finite number"}
	}
	if amount < 0 {
		return &FieldError{Field: field, Message: "must not be negative"}
	}
	if amount > model.MaxPaymentAmount {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d", model.MaxPaymentAmount)}
	}
	return nil
}

// Task validates a task record against the given project settings.
// An out-of-range week is a warning only; the declared week range is a
// soft reference that is not enforced at write time.
func Task(t model.Task, project model.Project) *Collector {
	var c Collector
	c.Add(Required("title", t.Title))
	c.Add(Text("title", t.Title))
	c.Add(MaxLen("title", t.Title, 200))
	c.Add(Text("notes", t.Notes))
	c.Add(MaxLen("notes", t.Notes, 2000))
	c.Add(Text("assignee", t.Assignee))

	if _, err := model.ParseStatus(string(t.Status)); err != nil {
		c.Add(&FieldError{Field: "status", Message: err.Error()})
	}
	if _, err := model.ParsePriority(string(t.Priority)); err != nil {
		c.Add(&FieldError{Field: "priority", Message: err.Error()})
	}

	if t.Week < 1 {
		c.Add(&FieldError{Field: "week", Message: "must be at least 1"})
	} else if project.TotalWeeks > 0 && t.Week > project.TotalWeeks {
		c.Warn(fmt.Sprintf("week %d is outside the project's %d-week plan", t.Week, project.TotalWeeks))
	}

	return &c
}

// Payment validates a payment record.
func Payment(p model.Payment) *Collector {
	var c Collector
	c.Add(Required("payee", p.Payee))
	c.Add(Text("payee", p.Payee))
	c.Add(MaxLen("payee", p.Payee, 200))
	c.Add(Text("category", p.Category))
	c.Add(Text("note", p.Note))
	c.Add(Amount("amount", p.Amount))
	return &c
}

// Contact validates a contact record.
func Contact(ct model.Contact) *Collector {
	var c Collector
	c.Add(Required("name", ct.Name))
	c.Add(Text("name", ct.Name))
	c.Add(MaxLen("name", ct.Name, 200))
	c.Add(Text("role", ct.Role))
	c.Add(Text("notes", ct.Notes))
	return &c
}
