// internal/fourierapp/app.go
package fourierapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"metro-core/imagefilter"
	"metro/internal/fouriercli"
	"metro/internal/version"
	"metro/internal/writers"
)

// RunContext decodes the input image, optionally corrupts it, applies the
// circular Fourier mask, and writes the result as PNG. Exit codes match
// the sampler: 0 ok, 2 invalid input, 3 output failure, 130 interrupted.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := fouriercli.NewFlagSet("metro-fourier")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = fouriercli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := fouriercli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "metro-fourier version %s\n", version.Version)
		return 0
	}
	if opts.Examples {
		fouriercli.PrintExamples(stdout)
		return 0
	}

	src, err := decodeImage(opts.InputPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	grid := imagefilter.Gray(src)

	if opts.Noise > 0 {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		grid = imagefilter.SaltPepper(grid, opts.Noise, rand.New(rand.NewSource(seed)))
	}

	if err := ctx.Err(); err != nil {
		return 130
	}
	filtered := imagefilter.Filter(grid, opts.Radius, filterMode(opts.Filter))

	if err := writePNG(opts.OutputPath, filtered); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if !opts.Quiet {
		rows, cols := filtered.Dims()
		fmt.Fprintf(stderr, "wrote %s (%dx%d, %s radius %g)\n",
			opts.OutputPath, cols, rows, opts.Filter, opts.Radius)
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, imagefilter.ToImage(m)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil && !writers.IsBrokenPipe(err) {
		return err
	}
	return nil
}

func filterMode(s string) imagefilter.Mode {
	if s == fouriercli.FilterHighpass {
		return imagefilter.Highpass
	}
	return imagefilter.Lowpass
}
