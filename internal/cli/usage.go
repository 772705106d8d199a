// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"fastasplit/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – split a multi-FASTA file into chunks\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -i genome.fa -n 8\n", name)
		fmt.Fprintf(out, "  %s -i genome.fa -m 512M -o chunks/\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input-file file       FASTA file to split (gzip accepted) [*]")

		fmt.Fprintln(out, "\nSplitting (exactly one):")
		fmt.Fprintln(out, "  -n, --chunks int            Number of roughly equal chunks")
		fmt.Fprintln(out, "  -m, --max_file_size size    Max bytes per chunk (k/M/G/T binary suffixes)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output-dir dir        Output directory [%s]\n", def("output-dir"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress progress output [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}
