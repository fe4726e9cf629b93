package components

import "testing"

func TestLayoutRow_SumsExactly(t *testing.T) {
	tests := []struct {
		total int
		n     int
	}{
		{100, 4},
		{103, 4},
		{80, 3},
		{81, 2},
		{7, 5},
	}

	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Errorf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
			continue
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		// No width may differ from another by more than one
		for _, w := range widths {
			if w < widths[tt.n-1] || w > widths[0] {
				t.Errorf("LayoutRow(%d, %d) uneven: %v", tt.total, tt.n, widths)
				break
			}
		}
	}
}

func TestLayoutRow_Degenerate(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow with n=0 = %v, want nil", got)
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	// Clamped floor for tiny widths
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want 10", got)
	}
}
