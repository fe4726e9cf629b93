// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ldevries/atelier/internal/model"
)

// FormatMoney formats an amount with the project currency symbol and
// thousands separators. Whole amounts drop the decimals.
// e.g., 5000 -> "R5,000", 1234.5 -> "R1,234.50"
func FormatMoney(currency string, amount float64) string {
	if currency == "" {
		currency = "R"
	}
	if amount == float64(int64(amount)) {
		return currency + humanize.Comma(int64(amount))
	}
	return currency + humanize.CommafWithDigits(amount, 2)
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a date for table output, or "—" when unset.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "—"
	}
	return d.String()
}

// FormatRelative renders a timestamp as a relative phrase ("3 days ago").
func FormatRelative(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return humanize.Time(t)
}

// FormatDue renders a due date with its distance from now:
// "2025-01-12 (in 3d)", "2025-01-02 (5d overdue)", "2025-01-09 (today)".
func FormatDue(d model.Date, now time.Time) string {
	if d.IsZero() {
		return "—"
	}
	days := model.DateOf(now).DaysUntil(d)
	switch {
	case days == 0:
		return d.String() + " (today)"
	case days < 0:
		return fmt.Sprintf("%s (%dd overdue)", d, -days)
	default:
		return fmt.Sprintf("%s (in %dd)", d, days)
	}
}

// FormatStatus renders a status with a leading glyph.
func FormatStatus(s model.Status) string {
	switch s {
	case model.StatusDone:
		return "✓ " + s.Label()
	case model.StatusInProgress:
		return "◐ " + s.Label()
	default:
		return "○ " + s.Label()
	}
}

// Truncate shortens a string to max runes with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
