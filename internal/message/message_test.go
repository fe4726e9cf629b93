package message

import (
	"strings"
	"testing"
	"time"

	"github.com/ldevries/atelier/internal/model"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testDoc() *model.Document {
	return &model.Document{
		Project: model.Project{Name: "p", CurrentWeek: 2, TotalWeeks: 6},
		Tasks: []model.Task{
			{ID: "1", Title: "Finalize logo", Week: 2, Status: model.StatusDone},
			{ID: "2", Title: "Order packaging", Week: 2, Status: model.StatusInProgress},
			{ID: "3", Title: "Print flyers", Week: 2, Status: model.StatusNotStarted,
				DueDate: model.DateOf(testNow).AddDays(-2)},
			{ID: "4", Title: "Later thing", Week: 5, Status: model.StatusNotStarted},
		},
	}
}

func TestParseAudience(t *testing.T) {
	for _, ok := range []string{"client", "designer"} {
		if _, err := ParseAudience(ok); err != nil {
			t.Errorf("ParseAudience(%q): %v", ok, err)
		}
	}
	if _, err := ParseAudience("boss"); err == nil {
		t.Error("unknown audience must be rejected")
	}
}

func TestGenerate_Client(t *testing.T) {
	msg, err := Generate(testDoc(), AudienceClient, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(msg, "Week 2 update") {
		t.Errorf("missing week header:\n%s", msg)
	}
	if !strings.Contains(msg, "Finalize logo") {
		t.Errorf("missing completed task:\n%s", msg)
	}
	if !strings.Contains(msg, "1/4 tasks complete") {
		t.Errorf("missing overall count:\n%s", msg)
	}
	// Other weeks stay out of the weekly lists
	if strings.Contains(msg, "Later thing") {
		t.Errorf("week 5 task leaked into the week 2 update:\n%s", msg)
	}
}

func TestGenerate_DesignerOverdue(t *testing.T) {
	msg, err := Generate(testDoc(), AudienceDesigner, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(msg, "Week 2 check-in") {
		t.Errorf("missing check-in header:\n%s", msg)
	}
	if !strings.Contains(msg, "1 item(s) slipped") {
		t.Errorf("missing overdue heads-up:\n%s", msg)
	}
}

func TestGenerate_EmptyWeek(t *testing.T) {
	doc := &model.Document{Project: model.Project{CurrentWeek: 1, TotalWeeks: 6}}

	msg, err := Generate(doc, AudienceClient, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(msg, "Building momentum") {
		t.Errorf("empty week must use the fallback line:\n%s", msg)
	}
}

func TestGenerate_SanitizesTitles(t *testing.T) {
	doc := testDoc()
	doc.Tasks[1].Title = "Order\x1b[31m packaging"

	msg, err := Generate(doc, AudienceClient, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(msg, "\x1b") {
		t.Errorf("escape byte reached the message:\n%q", msg)
	}
	if !strings.Contains(msg, "Order packaging") {
		t.Errorf("sanitized title missing:\n%s", msg)
	}
}
