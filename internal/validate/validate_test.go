package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/ldevries/atelier/internal/model"
)

func TestAmount_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		wantOK bool
	}{
		{"zero", 0, true},
		{"typical", 1250.75, true},
		{"exactly at maximum", 10_000_000, true},
		{"just above maximum", 10_000_001, false},
		{"negative", -0.01, false},
		{"not a number", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Amount("amount", tt.amount)
			if (err == nil) != tt.wantOK {
				t.Errorf("Amount(%v) = %v, wantOK %v", tt.amount, err, tt.wantOK)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	if err := Required("title", "hello"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Required("title", "   "); err == nil {
		t.Error("whitespace-only value must be rejected")
	}
	if err := Required("title", ""); err == nil {
		t.Error("empty value must be rejected")
	}
}

func TestText(t *testing.T) {
	if err := Text("notes", "plain text, ünïcödé ok"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Text("notes", "bad\x00byte"); err == nil {
		t.Error("NUL byte must be rejected")
	}
	if err := Text("notes", string([]byte{0xff, 0xfe})); err == nil {
		t.Error("invalid UTF-8 must be rejected")
	}
}

func TestTask_WeekRange(t *testing.T) {
	proj := model.Project{TotalWeeks: 6}
	base := model.Task{
		Title:    "order boxes",
		Week:     3,
		Status:   model.StatusNotStarted,
		Priority: model.PriorityLow,
	}

	c := Task(base, proj)
	if c.HasErrors() {
		t.Fatalf("valid task rejected: %v", c.Err())
	}
	if len(c.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", c.Warnings())
	}

	// Beyond the plan: accepted with a warning
	late := base
	late.Week = 9
	c = Task(late, proj)
	if c.HasErrors() {
		t.Errorf("out-of-plan week must not block: %v", c.Err())
	}
	if len(c.Warnings()) != 1 {
		t.Errorf("Warnings = %v, want one out-of-plan warning", c.Warnings())
	}

	// Week zero is a hard error
	bad := base
	bad.Week = 0
	if c = Task(bad, proj); !c.HasErrors() {
		t.Error("week 0 must be rejected")
	}
}

func TestTask_CollectsAllErrors(t *testing.T) {
	c := Task(model.Task{Week: 0, Status: "weird", Priority: "urgent"}, model.Project{TotalWeeks: 6})
	if len(c.Errors()) < 3 {
		t.Errorf("Errors = %v, want title, status, priority, and week all reported", c.Errors())
	}
	if err := c.Err(); err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("Err() = %v, want a combined message naming the title field", err)
	}
}

func TestPayment(t *testing.T) {
	c := Payment(model.Payment{Payee: "Printer", Amount: 200})
	if c.HasErrors() {
		t.Errorf("valid payment rejected: %v", c.Err())
	}

	c = Payment(model.Payment{Payee: "", Amount: 20_000_000})
	if len(c.Errors()) != 2 {
		t.Errorf("Errors = %v, want missing payee and oversized amount", c.Errors())
	}
}

func TestContact(t *testing.T) {
	c := Contact(model.Contact{Name: "Thandi"})
	if c.HasErrors() {
		t.Errorf("valid contact rejected: %v", c.Err())
	}
	if c = Contact(model.Contact{}); !c.HasErrors() {
		t.Error("contact without a name must be rejected")
	}
}
