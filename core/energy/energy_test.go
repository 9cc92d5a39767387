package energy

import (
	"math"
	"testing"
)

func TestQuadratic(t *testing.T) {
	q := Quadratic{}
	cases := []struct{ x, want float64 }{
		{0, 0},
		{1, 1},
		{-2, 4},
		{0.5, 0.25},
	}
	for _, c := range cases {
		if got := q.Energy(c.x); got != c.want {
			t.Errorf("Energy(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestDelta(t *testing.T) {
	q := Quadratic{}
	if got := Delta(q, 1, 2); got != 3 {
		t.Errorf("Delta(1,2) = %v, want 3", got)
	}
	if got := Delta(q, 2, 1); got != -3 {
		t.Errorf("Delta(2,1) = %v, want -3", got)
	}
	if got := Delta(q, 3, -3); got != 0 {
		t.Errorf("Delta(3,-3) = %v, want 0", got)
	}
}

// A substituted potential must flow through Delta unchanged.
func TestFuncAdapter(t *testing.T) {
	m := Func(func(x float64) float64 { return math.Abs(x) })
	if got := m.Energy(-4); got != 4 {
		t.Errorf("Energy(-4) = %v, want 4", got)
	}
	if got := Delta(m, -1, 3); got != 2 {
		t.Errorf("Delta(-1,3) = %v, want 2", got)
	}
}
