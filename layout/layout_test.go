package layout

import "testing"

func TestPercentOf(t *testing.T) {
	cases := []struct {
		whole, percent, want float64
	}{
		{200, 50, 100},
		{80, 25, 20},
		{0, 100, 0},
		{100, 0, 0},
		{3, 33, 33 * 3.0 / 100},
		{-40, 50, -20},
		{100, 150, 150},
	}
	for _, c := range cases {
		if got := PercentOf(c.whole, c.percent); got != c.want {
			t.Errorf("PercentOf(%v, %v) = %v, want %v", c.whole, c.percent, got, c.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if got := Width(80, 50); got != 40 {
		t.Errorf("Width(80, 50) = %d, want 40", got)
	}
	if got := Width(81, 50); got != 40 {
		t.Errorf("Width(81, 50) = %d, want 40 (truncated)", got)
	}
	if got := Width(80, -10); got != 0 {
		t.Errorf("Width(80, -10) = %d, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 10, 20); got != 10 {
		t.Errorf("Clamp below = %d, want 10", got)
	}
	if got := Clamp(25, 10, 20); got != 20 {
		t.Errorf("Clamp above = %d, want 20", got)
	}
	if got := Clamp(15, 10, 20); got != 15 {
		t.Errorf("Clamp inside = %d, want 15", got)
	}
}
