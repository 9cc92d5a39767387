// core/stats/stats.go
// End-of-run summaries over a record sequence: acceptance rate and the
// first two moments of the sampled states. This sits off the record path;
// the driver only feeds an Accumulator when a summary was requested.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"metro-core/chain"
)

// Accumulator gathers per-record values for a Summary.
type Accumulator struct {
	xs       []float64
	accepted int
}

// Add records one chain step.
func (a *Accumulator) Add(r chain.Record) {
	a.xs = append(a.xs, r.X)
	if r.Accepted {
		a.accepted++
	}
}

// Summary describes one finished run.
type Summary struct {
	Count    int
	Accepted int
	Rate     float64 // accepted / count; 0 for an empty run
	Mean     float64 // NaN for an empty run
	StdDev   float64 // sample standard deviation; NaN below two records
}

// Summary computes the summary of everything added so far.
func (a *Accumulator) Summary() Summary {
	s := Summary{Count: len(a.xs), Accepted: a.accepted}
	if s.Count == 0 {
		s.Mean = math.NaN()
		s.StdDev = math.NaN()
		return s
	}
	s.Rate = float64(a.accepted) / float64(s.Count)
	s.Mean = stat.Mean(a.xs, nil)
	s.StdDev = stat.StdDev(a.xs, nil)
	return s
}
