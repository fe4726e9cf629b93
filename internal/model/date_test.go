package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Errorf("String = %q, want 2026-03-15", d.String())
	}

	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Error("wrong layout must be rejected")
	}
	if _, err := ParseDate("not a date"); err == nil {
		t.Error("garbage must be rejected")
	}
}

func TestDate_DaysUntil(t *testing.T) {
	base := NewDate(2026, time.March, 15)
	tests := []struct {
		name   string
		target Date
		want   int
	}{
		{"same day", base, 0},
		{"next day", base.AddDays(1), 1},
		{"five back", base.AddDays(-5), -5},
		{"across month end", NewDate(2026, time.April, 1), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.DaysUntil(tt.target); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	out, err := json.Marshal(wrapper{Due: NewDate(2026, time.March, 15)})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"due":"2026-03-15"}` {
		t.Errorf("Marshal = %s", out)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"due":"2026-04-01"}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.Due.String() != "2026-04-01" {
		t.Errorf("Unmarshal = %q, want 2026-04-01", w.Due.String())
	}

	// Unset round trip: empty string and null both mean no date
	for _, raw := range []string{`{"due":""}`, `{"due":null}`} {
		var z wrapper
		if err := json.Unmarshal([]byte(raw), &z); err != nil {
			t.Fatalf("Unmarshal %s: %v", raw, err)
		}
		if !z.Due.IsZero() {
			t.Errorf("Unmarshal %s: IsZero = false", raw)
		}
	}

	out, err = json.Marshal(wrapper{})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"due":""}` {
		t.Errorf("zero Marshal = %s, want empty string", out)
	}
}

func TestDate_Comparisons(t *testing.T) {
	a := NewDate(2026, time.March, 15)
	b := a.AddDays(1)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After ordering wrong")
	}
	if !a.Equal(DateOf(time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC))) {
		t.Error("DateOf must truncate time-of-day")
	}
}

func TestParseStatusAndPriority(t *testing.T) {
	if _, err := ParseStatus("in_progress"); err != nil {
		t.Errorf("ParseStatus(in_progress): %v", err)
	}
	if _, err := ParseStatus("cancelled"); err == nil {
		t.Error("unknown status must be rejected")
	}
	if _, err := ParsePriority("high"); err != nil {
		t.Errorf("ParsePriority(high): %v", err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("unknown priority must be rejected")
	}
}

func TestPriority_MoreUrgent(t *testing.T) {
	if !PriorityHigh.MoreUrgent(PriorityLow) {
		t.Error("high must outrank low")
	}
	if PriorityLow.MoreUrgent(PriorityMedium) {
		t.Error("low must not outrank medium")
	}
}
