package chain

import (
	"context"
	"errors"
	"testing"

	"metro-core/metropolis"
)

// driftStepper moves deterministically so state continuity is checkable.
type driftStepper struct {
	calls int
	delta float64
}

func (s *driftStepper) Step(x float64) (float64, bool) {
	s.calls++
	return x + s.delta, true
}

func TestRecordCount(t *testing.T) {
	st := &driftStepper{delta: 1}
	records, err := Run(context.Background(), 0, 10, st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(records) != 10 || st.calls != 10 {
		t.Fatalf("got %d records / %d calls, want 10/10", len(records), st.calls)
	}
}

func TestZeroIterations(t *testing.T) {
	records, err := Run(context.Background(), 1.5, 0, &driftStepper{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("N=0 produced %d records", len(records))
	}
}

func TestNegativeIterationsRejected(t *testing.T) {
	st := &driftStepper{}
	_, err := Run(context.Background(), 0, -1, st)
	if !errors.Is(err, ErrNegativeIterations) {
		t.Fatalf("err = %v, want ErrNegativeIterations", err)
	}
	if st.calls != 0 {
		t.Fatalf("stepper consulted %d times before the error", st.calls)
	}
}

// Record i must hold the state used as x_old for record i+1.
func TestStateContinuity(t *testing.T) {
	records, err := Run(context.Background(), 2, 5, &driftStepper{delta: 0.5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := 2.0
	for i, r := range records {
		want += 0.5
		if r.X != want {
			t.Errorf("record %d: X = %v, want %v", i, r.X, want)
		}
	}
}

func TestStateContinuityWithRejections(t *testing.T) {
	s := metropolis.New(metropolis.Config{StepSize: 1.5, Beta: 2, Seed: 21})
	records, err := Run(context.Background(), 0, 300, s)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	replay := metropolis.New(metropolis.Config{StepSize: 1.5, Beta: 2, Seed: 21})
	x := 0.0
	rejected := 0
	for i, r := range records {
		next, accepted := replay.Step(x)
		if next != r.X || accepted != r.Accepted {
			t.Fatalf("record %d: (%v, %v), replay gives (%v, %v)", i, r.X, r.Accepted, next, accepted)
		}
		if !accepted {
			if next != x {
				t.Fatalf("record %d: rejection changed state %v → %v", i, x, next)
			}
			rejected++
		}
		x = next
	}
	if rejected == 0 {
		t.Fatal("expected some rejections at β=2")
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := &driftStepper{}
	err := ForEachRecord(ctx, 0, 100, st, func(Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if st.calls != 0 {
		t.Fatalf("stepper ran %d times after cancellation", st.calls)
	}
}

func TestVisitErrorStopsRun(t *testing.T) {
	sentinel := errors.New("sink full")
	st := &driftStepper{delta: 1}
	err := ForEachRecord(context.Background(), 0, 100, st, func(r Record) error {
		if r.X >= 3 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if st.calls != 3 {
		t.Fatalf("stepper ran %d times, want 3", st.calls)
	}
}
