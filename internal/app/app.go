// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"metro-core/chain"
	"metro-core/metropolis"
	"metro-core/stats"
	"metro/internal/cli"
	"metro/internal/version"
	"metro/internal/writers"
)

// RunContext parses argv, runs the chain, and streams records to the
// requested sink. Exit codes: 0 ok, 2 invalid parameters, 3 I/O failure,
// 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("metro")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stdout)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "metro version %s\n", version.Version)
		return 0
	}
	if opts.Examples {
		cli.PrintExamples(stdout)
		return 0
	}

	// The sink opens before the sampler exists: a bad path must fail
	// before any randomness is consumed, and a valid one is truncated
	// exactly once, at the start of the run.
	var out io.Writer = stdout
	var f *os.File
	if opts.OutputPath != "-" {
		f, err = os.Create(opts.OutputPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		out = f
	}

	sampler := metropolis.New(metropolis.Config{
		StepSize: opts.StepSize,
		Beta:     opts.Beta,
		Proposal: proposalMode(opts.Proposal),
		Seed:     opts.Seed,
	})

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	in, writeErr := writers.StartRecordWriter(out, opts.Format, opts.Header, 64)

	var acc stats.Accumulator
	runErr := chain.ForEachRecord(ctx, opts.X0, opts.Iterations, sampler, func(r chain.Record) error {
		if opts.Summary {
			acc.Add(r)
		}
		select {
		case in <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if f != nil {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintln(stderr, cerr)
			return 3
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, runErr)
		if errors.Is(runErr, chain.ErrNegativeIterations) {
			return 2
		}
		return 3
	}

	if opts.Summary && !opts.Quiet {
		s := acc.Summary()
		fmt.Fprintf(stderr, "n=%d accepted=%d rate=%.4f mean=%.6g stddev=%.6g\n",
			s.Count, s.Accepted, s.Rate, s.Mean, s.StdDev)
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func proposalMode(s string) metropolis.Proposal {
	if s == cli.ProposalLinear {
		return metropolis.Linear
	}
	return metropolis.Scaled
}
