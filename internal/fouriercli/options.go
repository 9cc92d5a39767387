// internal/fouriercli/options.go
package fouriercli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"metro/internal/clibase"
	"metro/internal/cliutil"
)

// Filter modes.
const (
	FilterLowpass  = "lowpass"
	FilterHighpass = "highpass"
)

// Options holds all CLI flags and arguments for the image filter.
type Options struct {
	clibase.Common

	// Positional
	InputPath  string
	OutputPath string

	// Filtering
	Radius float64
	Filter string  // lowpass | highpass
	Noise  float64 // salt-and-pepper corruption probability, 0 disables
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "circular Fourier-domain image filter", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] input.{png,jpg} output.png\n", name)
		fmt.Fprintln(out, "\nFiltering:")
		fmt.Fprintf(out, "      --radius float          Mask radius in the shifted Fourier plane [%s]\n", def("radius"))
		fmt.Fprintf(out, "      --filter string         Pass band: lowpass | highpass [%s]\n", def("filter"))
		fmt.Fprintf(out, "      --noise float           Salt-and-pepper probability before filtering [%s]\n", def("noise"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for metro-fourier.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "metro-fourier", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Keep the leading Fourier modes of an image:")
		_, _ = fmt.Fprintln(w, "  metro-fourier --radius 100 einstein.jpg restricted.png")
		_, _ = fmt.Fprintln(w, "\nIsolate injected noise via the complementary band:")
		_, _ = fmt.Fprintln(w, "  metro-fourier --noise 0.1 --filter highpass --seed 42 einstein.jpg noise.png")
	})
}

// ParseArgs registers and parses flags and positionals into an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)
	fs.Float64Var(&o.Radius, "radius", 100, "mask radius in the shifted Fourier plane [100]")
	fs.StringVar(&o.Filter, "filter", FilterLowpass, "pass band: lowpass | highpass ["+FilterLowpass+"]")
	fs.Float64Var(&o.Noise, "noise", 0, "salt-and-pepper probability before filtering [0]")
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

	if len(posArgs) != 2 {
		return o, fmt.Errorf("expected 2 arguments (input output), got %d", len(posArgs))
	}
	o.InputPath, o.OutputPath = posArgs[0], posArgs[1]

	if o.Radius <= 0 {
		return o, errors.New("--radius must be > 0")
	}
	if o.Noise < 0 {
		return o, errors.New("--noise must be ≥ 0")
	}
	switch o.Filter {
	case FilterLowpass, FilterHighpass:
	default:
		return o, fmt.Errorf("invalid --filter %q", o.Filter)
	}
	return o, nil
}
