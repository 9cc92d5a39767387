// internal/clibase/common.go
package clibase

import "flag"

// Common holds CLI fields shared by metro and metro-fourier.
type Common struct {
	Seed     uint64
	Quiet    bool
	Version  bool
	Examples bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.Uint64Var(&c.Seed, "seed", 0, "PRNG seed (0 = derive from time) [0]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential messages [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "show usage examples and exit [false]")
}
