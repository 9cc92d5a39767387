// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"metro/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints
// tool-specific sections (usage line, arguments, flag blocks).
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, oneLiner)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --seed uint             PRNG seed (0 = derive from time) [%s]\n", def("seed"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential messages [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
