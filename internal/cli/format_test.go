package cli

import (
	"testing"
	"time"

	"github.com/ldevries/atelier/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		amount   float64
		want     string
	}{
		{"whole amount drops decimals", "R", 5000, "R5,000"},
		{"fractional keeps two digits", "R", 1234.5, "R1,234.50"},
		{"zero", "R", 0, "R0"},
		{"empty currency defaults", "", 10, "R10"},
		{"other symbol", "$", 99.99, "$99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.currency, tt.amount); got != tt.want {
				t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.currency, tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(33.333); got != "33.3%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestFormatDue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	tests := []struct {
		name string
		d    model.Date
		want string
	}{
		{"unset", model.Date{}, "—"},
		{"today", today, "2026-03-15 (today)"},
		{"future", today.AddDays(3), "2026-03-18 (in 3d)"},
		{"past", today.AddDays(-5), "2026-03-10 (5d overdue)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDue(tt.d, now); got != tt.want {
				t.Errorf("FormatDue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is too long", 8, "this is…"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 1, "x"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatStatus(t *testing.T) {
	if got := FormatStatus(model.StatusDone); got != "✓ Done" {
		t.Errorf("FormatStatus(done) = %q", got)
	}
	if got := FormatStatus(model.StatusNotStarted); got != "○ Not started" {
		t.Errorf("FormatStatus(not_started) = %q", got)
	}
}
