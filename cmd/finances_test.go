package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// useTempDoc points the command helpers at a throwaway document and
// config dir for the duration of a test.
func useTempDoc(t *testing.T) string {
	t.Helper()

	cfgDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgDir)
	if err := os.MkdirAll(filepath.Join(cfgDir, "atelier"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "[general]\njournal = false\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "atelier", "config.toml"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "project.json")
	flagDataFile = path
	t.Cleanup(func() { flagDataFile = "" })
	return path
}

func TestFinancesAdd_RejectsMalformedAmount(t *testing.T) {
	path := useTempDoc(t)

	tests := []string{"100abc", "abc", "1,000", "10e", ""}
	for _, amount := range tests {
		t.Run(amount, func(t *testing.T) {
			if err := runFinancesAdd(financesAddCmd, []string{"Printer", amount}); err == nil {
				t.Errorf("amount %q was accepted", amount)
			}
		})
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected amounts must not create the document")
	}
}

func TestFinancesAdd_AcceptsDecimalAmount(t *testing.T) {
	path := useTempDoc(t)

	if err := runFinancesAdd(financesAddCmd, []string{"Printer", "120.50"}); err != nil {
		t.Fatalf("runFinancesAdd: %v", err)
	}

	s := openStore()
	result, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(result.Doc.Payments) != 1 || result.Doc.Payments[0].Amount != 120.50 {
		t.Errorf("Payments = %+v, want one payment of 120.50", result.Doc.Payments)
	}
	if s.Path() != path {
		t.Errorf("store path = %q, want %q", s.Path(), path)
	}
}
