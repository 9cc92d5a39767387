package stats

import (
	"math"
	"testing"

	"metro-core/chain"
)

func TestSummary(t *testing.T) {
	var a Accumulator
	a.Add(chain.Record{X: 1, Accepted: true})
	a.Add(chain.Record{X: 2, Accepted: false})
	a.Add(chain.Record{X: 3, Accepted: true})

	s := a.Summary()
	if s.Count != 3 || s.Accepted != 2 {
		t.Fatalf("count/accepted = %d/%d, want 3/2", s.Count, s.Accepted)
	}
	if math.Abs(s.Rate-2.0/3.0) > 1e-12 {
		t.Errorf("rate = %v, want 2/3", s.Rate)
	}
	if s.Mean != 2 {
		t.Errorf("mean = %v, want 2", s.Mean)
	}
	if math.Abs(s.StdDev-1) > 1e-12 {
		t.Errorf("stddev = %v, want 1", s.StdDev)
	}
}

func TestEmptySummary(t *testing.T) {
	var a Accumulator
	s := a.Summary()
	if s.Count != 0 || s.Rate != 0 {
		t.Fatalf("empty summary count/rate = %d/%v", s.Count, s.Rate)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.StdDev) {
		t.Errorf("empty moments = %v/%v, want NaN/NaN", s.Mean, s.StdDev)
	}
}
