// core/chain/chain.go
package chain

import (
	"context"
	"errors"
)

// Record is the outcome of one Metropolis update: the state after the step
// and whether the proposal was accepted. Records are written once and never
// mutated; a run emits exactly one per iteration, in order.
type Record struct {
	X        float64
	Accepted bool
}

// Stepper advances a state by one update. Step must be a pure decision over
// its input and the stepper's own generator.
type Stepper interface {
	Step(x float64) (next float64, accepted bool)
}

// ErrNegativeIterations reports a negative iteration count. It is returned
// before any step runs, so no randomness is consumed.
var ErrNegativeIterations = errors.New("iteration count must be ≥ 0")

// ForEachRecord runs n updates starting from x0 and streams each Record, in
// order, to visit. The sequence is single-pass and non-restartable: the
// stepper's generator is consumed destructively, so replaying a run needs
// the same seed. The context is checked before every step; cancellation
// between steps never leaves partial state behind, and records already
// visited remain a valid prefix of the run.
func ForEachRecord(ctx context.Context, x0 float64, n int, st Stepper, visit func(Record) error) error {
	if n < 0 {
		return ErrNegativeIterations
	}
	x := x0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, accepted := st.Step(x)
		x = next
		if err := visit(Record{X: next, Accepted: accepted}); err != nil {
			return err
		}
	}
	return nil
}

// Run collects the full record sequence of a chain. n = 0 yields an empty
// slice and is not an error.
func Run(ctx context.Context, x0 float64, n int, st Stepper) ([]Record, error) {
	if n < 0 {
		return nil, ErrNegativeIterations
	}
	records := make([]Record, 0, n)
	err := ForEachRecord(ctx, x0, n, st, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
