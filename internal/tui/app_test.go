package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ldevries/atelier/internal/model"
)

// testApp builds a loaded App around the given document, sized like a
// typical terminal.
func testApp(doc *model.Document) App {
	a := App{doc: doc, width: 120, height: 40, loaded: true}
	a.record = func(string, string, string, string) {}
	a.recompute()
	return a
}

// Injected sequences use screen and cursor control codes that no style
// library emits, so the assertions hold under any color profile.
func escDoc() *model.Document {
	now := time.Now()
	return &model.Document{
		Project: model.Project{Name: "p", CurrentWeek: 1, TotalWeeks: 6, BudgetTotal: 100},
		Tasks: []model.Task{
			{ID: "t1", Title: "evil\x1b[2Jtitle", Week: 1,
				Status: model.StatusNotStarted, Priority: model.PriorityLow,
				Assignee: "who\x1b[3Aami", Notes: "note\x1b[5Bbody",
				CreatedAt: now, UpdatedAt: now},
		},
		Payments: []model.Payment{
			{ID: "p1", Payee: "pay\x1b[2Jee", Category: "cat\x1b[3Aegory", Amount: 10},
		},
		Contacts: []model.Contact{
			{ID: "c1", Name: "na\x1b[2Jme", Role: "ro\x1b[3Ale",
				Email: "e\x1b[5B@x.co", Phone: "07\x1b[2J7", Notes: "n\x1b[3Aotes"},
		},
	}
}

// Rendered tabs must never carry document-supplied escape sequences to
// the terminal, no matter how the file was produced.
func TestTabs_StripDocumentEscapes(t *testing.T) {
	a := testApp(escDoc())
	cw := a.contentWidth()

	tabs := []struct {
		name   string
		render func() string
	}{
		{"overview", func() string { return a.renderOverviewTab(cw) }},
		{"tasks", func() string { return a.renderTasksTab(cw) }},
		{"finances", func() string { return a.renderFinancesTab(cw) }},
		{"timeline", func() string { return a.renderTimelineTab(cw) }},
		{"contacts", func() string { return a.renderContactsTab(cw) }},
	}

	for _, tab := range tabs {
		t.Run(tab.name, func(t *testing.T) {
			out := tab.render()
			for _, seq := range []string{"\x1b[2J", "\x1b[3A", "\x1b[5B"} {
				if strings.Contains(out, seq) {
					t.Errorf("rendered output contains injected sequence %q", seq)
				}
			}
		})
	}
}

func TestTasksTab_RendersTitleLiterally(t *testing.T) {
	a := testApp(escDoc())

	out := a.renderTasksTab(a.contentWidth())
	if !strings.Contains(out, "eviltitle") {
		t.Errorf("sanitized title missing from output:\n%s", out)
	}
}

func TestTruncateToast(t *testing.T) {
	if got := truncateToast("evil\x1b[2Jtoast"); strings.Contains(got, "\x1b") {
		t.Errorf("toast kept an escape byte: %q", got)
	}

	// Multi-byte runes survive truncation intact
	long := strings.Repeat("é", 40)
	got := truncateToast(long)
	if !utf8.ValidString(got) {
		t.Errorf("truncation split a rune: %q", got)
	}
	if n := utf8.RuneCountInString(got); n > 30 {
		t.Errorf("toast is %d runes, want at most 30", n)
	}

	short := "héllo"
	if got := truncateToast(short); got != short {
		t.Errorf("truncateToast(%q) = %q, want unchanged", short, got)
	}
}
