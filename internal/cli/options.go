// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fastasplit/internal/bytesize"
)

// Options holds all CLI flags and arguments.
type Options struct {
	InputFile   string
	Chunks      int   // count policy: desired number of chunks
	MaxFileSize int64 // size policy: max bytes per chunk
	OutputDir   string

	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Exactly one of --chunks / --max_file_size must be supplied.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var maxSize string

	fs.StringVar(&opt.InputFile, "i", "", "input FASTA file to split (shorthand) [*]")
	fs.StringVar(&opt.InputFile, "input-file", "", "input FASTA file to split [*]")
	fs.IntVar(&opt.Chunks, "n", 0, "number of chunks (shorthand)")
	fs.IntVar(&opt.Chunks, "chunks", 0, "number of chunks")
	fs.StringVar(&maxSize, "m", "", "max bytes per chunk, k/M/G/T suffixes accepted (shorthand)")
	fs.StringVar(&maxSize, "max_file_size", "", "max bytes per chunk, k/M/G/T suffixes accepted")
	fs.StringVar(&opt.OutputDir, "o", ".", "output directory (shorthand)")
	fs.StringVar(&opt.OutputDir, "output-dir", ".", "output directory")

	fs.BoolVar(&opt.Quiet, "q", false, "suppress progress output (shorthand) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress output [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if maxSize != "" {
		v, err := bytesize.Parse(maxSize)
		if err != nil {
			return opt, err
		}
		opt.MaxFileSize = v
	}

	// Validation
	usingCount := opt.Chunks != 0
	usingSize := maxSize != ""
	switch {
	case opt.InputFile == "":
		return opt, errors.New("--input-file is required")
	case usingCount && usingSize:
		return opt, errors.New("--chunks conflicts with --max_file_size")
	case !usingCount && !usingSize:
		return opt, errors.New("indicate the number of chunks or the max file size to split the FASTA file")
	}
	if usingCount && opt.Chunks < 1 {
		return opt, errors.New("--chunks must be ≥ 1")
	}
	if usingSize && opt.MaxFileSize < 1 {
		return opt, errors.New("--max_file_size must be ≥ 1")
	}
	return opt, nil
}

// Validate checks the filesystem-dependent arguments. It runs before
// any output file is created.
func Validate(opt Options) error {
	st, err := os.Stat(opt.InputFile)
	switch {
	case err != nil:
		return fmt.Errorf("%s does not exist", opt.InputFile)
	case st.IsDir():
		return fmt.Errorf("%s is a directory", opt.InputFile)
	case !st.Mode().IsRegular():
		return fmt.Errorf("%s is not a regular file", opt.InputFile)
	}
	ost, err := os.Stat(opt.OutputDir)
	switch {
	case err != nil:
		return fmt.Errorf("%s does not exist", opt.OutputDir)
	case !ost.IsDir():
		return fmt.Errorf("%s is not a directory", opt.OutputDir)
	}
	return nil
}
