// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"metro/internal/clibase"
	"metro/internal/cliutil"
	"metro/internal/output"
)

// Proposal window modes.
const (
	ProposalScaled = "scaled" // x + h·U(-h,h), the reference behavior
	ProposalLinear = "linear" // x + U(-h,h), the conventional window
)

// Options holds all CLI flags and arguments for the sampler.
type Options struct {
	clibase.Common

	// Positional
	X0         float64
	Beta       float64
	StepSize   float64
	Iterations int
	OutputPath string // "-" for stdout

	// Sampling
	Proposal string // scaled | linear

	// Output
	Format  string // csv | jsonl
	Summary bool
	Header  bool // true unless --no-header
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "Metropolis Monte Carlo sampler", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] x0 beta h num_iterations output_file\n", name)
		fmt.Fprintln(out, "\nArguments:")
		fmt.Fprintln(out, "  x0                          Initial value of the state x")
		fmt.Fprintln(out, "  beta                        Inverse temperature")
		fmt.Fprintln(out, "  h                           Maximum step size (see --proposal)")
		fmt.Fprintln(out, "  num_iterations              Number of Metropolis updates (≥ 0)")
		fmt.Fprintln(out, "  output_file                 Destination file, or '-' for stdout")
		fmt.Fprintln(out, "\nSampling:")
		fmt.Fprintf(out, "      --proposal string       Proposal window: scaled | linear [%s]\n", def("proposal"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --format string         Record format: csv | jsonl [%s]\n", def("format"))
		fmt.Fprintf(out, "      --no-header             Suppress the CSV header row [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --summary               Print acceptance/moment summary to stderr [%s]\n", def("summary"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for metro.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "metro", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Sample 100000 states of the Gaussian chain at β=1:")
		_, _ = fmt.Fprintln(w, "  metro 0.0 1.0 1.5 100000 samples.csv")
		_, _ = fmt.Fprintln(w, "\nReproducible run, conventional window, with a run summary:")
		_, _ = fmt.Fprintln(w, "  metro --seed 42 --proposal linear --summary 0.0 1.0 1.5 100000 samples.csv")
	})
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("metro"), os.Args[1:]) }

// ParseArgs registers and parses flags and positionals into an Options
// struct. All validation happens here, before any file is opened or any
// randomness is drawn.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Proposal, "proposal", ProposalScaled, "proposal window: scaled | linear ["+ProposalScaled+"]")
	fs.StringVar(&o.Format, "format", output.FormatCSV, "record format: csv | jsonl ["+output.FormatCSV+"]")
	fs.BoolVar(&o.Summary, "summary", false, "print run summary to stderr [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress CSV header row [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		fs.Usage()
		return o, flag.ErrHelp
	}
	if o.Version || o.Examples {
		return o, nil
	}
	o.Header = !noHeader

	if len(posArgs) != 5 {
		return o, fmt.Errorf("expected 5 arguments (x0 beta h num_iterations output_file), got %d", len(posArgs))
	}
	var err error
	if o.X0, err = parseFloat("x0", posArgs[0]); err != nil {
		return o, err
	}
	if o.Beta, err = parseFloat("beta", posArgs[1]); err != nil {
		return o, err
	}
	if o.StepSize, err = parseFloat("h", posArgs[2]); err != nil {
		return o, err
	}
	if o.Iterations, err = strconv.Atoi(posArgs[3]); err != nil {
		return o, fmt.Errorf("invalid num_iterations %q: not an integer", posArgs[3])
	}
	o.OutputPath = posArgs[4]

	// Validation
	if o.Iterations < 0 {
		return o, errors.New("num_iterations must be ≥ 0")
	}
	if o.StepSize < 0 {
		return o, errors.New("h must be ≥ 0")
	}
	if o.OutputPath == "" {
		return o, errors.New("output_file must not be empty")
	}
	switch o.Proposal {
	case ProposalScaled, ProposalLinear:
	default:
		return o, fmt.Errorf("invalid --proposal %q", o.Proposal)
	}
	switch o.Format {
	case output.FormatCSV, output.FormatJSONL:
	default:
		return o, fmt.Errorf("invalid --format %q", o.Format)
	}
	return o, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, s)
	}
	return v, nil
}
