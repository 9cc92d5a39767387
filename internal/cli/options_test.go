// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return NewFlagSet("test") }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPositionalsOK(t *testing.T) {
	o := mustParse(t, "0.5", "2.0", "1.5", "100", "out.csv")
	if o.X0 != 0.5 || o.Beta != 2.0 || o.StepSize != 1.5 || o.Iterations != 100 || o.OutputPath != "out.csv" {
		t.Errorf("bad positional parse %+v", o)
	}
	if o.Format != "csv" || o.Proposal != ProposalScaled || !o.Header {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestNegativeX0IsPositional(t *testing.T) {
	o := mustParse(t, "-0.5", "1.0", "1.5", "10", "out.csv")
	if o.X0 != -0.5 {
		t.Errorf("x0 = %v, want -0.5", o.X0)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "0", "1", "1", "10", "out.csv", "--summary", "--seed", "42")
	if !o.Summary || o.Seed != 42 {
		t.Errorf("trailing flags not picked up: %+v", o)
	}
}

func TestStdoutPath(t *testing.T) {
	o := mustParse(t, "--format", "jsonl", "0", "0", "0", "0", "-")
	if o.OutputPath != "-" || o.Format != "jsonl" {
		t.Errorf("bad stdout parse %+v", o)
	}
}

func TestErrorMissingArguments(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"0.0", "1.0", "1.5", "100"}); err == nil {
		t.Fatal("expected error with 4 arguments")
	}
}

func TestErrorNonNumeric(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"zero", "1", "1", "10", "out.csv"}); err == nil {
		t.Fatal("expected error for non-numeric x0")
	}
	if _, err := ParseArgs(newFS(), []string{"0", "1", "1", "10.5", "out.csv"}); err == nil {
		t.Fatal("expected error for fractional num_iterations")
	}
}

func TestErrorNegativeIterations(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"0", "1", "1", "-1", "out.csv"}); err == nil {
		t.Fatal("expected error for negative num_iterations")
	}
}

func TestErrorNegativeStepSize(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"0", "1", "-1.5", "10", "out.csv"}); err == nil {
		t.Fatal("expected error for negative h")
	}
}

func TestErrorBadEnums(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--format", "tsv", "0", "1", "1", "10", "out.csv"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := ParseArgs(newFS(), []string{"--proposal", "gaussian", "0", "1", "1", "10", "out.csv"}); err == nil {
		t.Fatal("expected error for unknown proposal")
	}
}
