package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ldevries/atelier/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "project.json"))
}

func TestLoad_MissingFile(t *testing.T) {
	s := tempStore(t)

	result, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Doc.Project.CurrentWeek != 1 {
		t.Errorf("CurrentWeek = %d, want 1", result.Doc.Project.CurrentWeek)
	}
	if result.Doc.Project.TotalWeeks != 6 {
		t.Errorf("TotalWeeks = %d, want 6", result.Doc.Project.TotalWeeks)
	}
	if len(result.Doc.Tasks) != 0 {
		t.Errorf("Tasks = %d, want empty", len(result.Doc.Tasks))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := s.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("error = %v, want ErrCorrupt", err)
	}
	if result.Doc == nil || result.Doc.Project.CurrentWeek != 1 {
		t.Errorf("corrupt load did not fall back to the default document: %+v", result.Doc)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	doc := DefaultDocument()
	doc.Project.Name = "Point Jewels Launch"
	doc.Project.BudgetTotal = 5000
	doc.Tasks = append(doc.Tasks, model.Task{
		ID:        model.NewID(),
		Title:     "Order display cases",
		Week:      2,
		Status:    model.StatusInProgress,
		Priority:  model.PriorityHigh,
		DueDate:   model.DateOf(now).AddDays(3),
		CreatedAt: now,
		UpdatedAt: now,
	})
	doc.Payments = append(doc.Payments, model.Payment{
		ID: model.NewID(), Payee: "Printer", Category: "print", Amount: 120.50, Paid: true,
	})

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected schema warnings: %v", result.Warnings)
	}

	got := result.Doc
	if got.Project.Name != doc.Project.Name {
		t.Errorf("Project.Name = %q, want %q", got.Project.Name, doc.Project.Name)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "Order display cases" {
		t.Errorf("Tasks = %+v, want the saved task back", got.Tasks)
	}
	if !got.Tasks[0].DueDate.Equal(doc.Tasks[0].DueDate) {
		t.Errorf("DueDate = %v, want %v", got.Tasks[0].DueDate, doc.Tasks[0].DueDate)
	}
	if len(got.Payments) != 1 || got.Payments[0].Amount != 120.50 {
		t.Errorf("Payments = %+v, want the saved payment back", got.Payments)
	}
}

func TestSave_Idempotent(t *testing.T) {
	s := tempStore(t)

	doc := DefaultDocument()
	doc.Project.Name = "stable"
	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(result.Doc); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("load-then-save changed the file contents")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(DefaultDocument()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("data dir has %d entries, want only the document: %v", len(entries), names)
	}
}

func TestExport_Verbatim(t *testing.T) {
	s := tempStore(t)
	doc := DefaultDocument()
	doc.Project.Name = "export me"
	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "backup.json")
	if err := s.Export(dst); err != nil {
		t.Fatalf("Export: %v", err)
	}

	src, _ := os.ReadFile(s.Path())
	got, _ := os.ReadFile(dst)
	if string(src) != string(got) {
		t.Error("exported bytes differ from the stored document")
	}
}

func TestLoad_SchemaWarnings(t *testing.T) {
	s := tempStore(t)
	// amount above the allowed maximum, status outside the enum
	raw := `{
  "schema_version": 1,
  "project": {"name": "p", "current_week": 1, "total_weeks": 6, "budget_total": 0},
  "tasks": [{"id": "x", "title": "t", "week": 1, "status": "bogus", "priority": "low"}],
  "payments": [{"id": "y", "payee": "v", "category": "", "amount": 10000001, "paid": false}],
  "contacts": []
}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := s.Load()
	if err != nil {
		t.Fatalf("schema violations must not fail the load: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected schema warnings for invalid status and oversized amount")
	}
}

func TestNormalize_FillsDefaults(t *testing.T) {
	s := tempStore(t)
	raw := `{"project": {"name": "bare"}}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc := result.Doc
	if doc.SchemaVersion != model.SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", doc.SchemaVersion, model.SchemaVersion)
	}
	if doc.Project.CurrentWeek != 1 || doc.Project.TotalWeeks != 6 {
		t.Errorf("weeks = %d/%d, want 1/6", doc.Project.CurrentWeek, doc.Project.TotalWeeks)
	}
	if doc.Project.Currency != "R" {
		t.Errorf("Currency = %q, want R", doc.Project.Currency)
	}
	if doc.Tasks == nil || doc.Payments == nil || doc.Contacts == nil {
		t.Error("collections must be non-nil after load")
	}
}
