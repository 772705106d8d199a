// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fastasplit/internal/cli"
	"fastasplit/internal/cmdutil"
	"fastasplit/internal/fasta"
	"fastasplit/internal/split"
	"fastasplit/internal/version"
)

// RunContext parses argv, validates the arguments, and drives one of
// the two chunk writers. Exit codes: 0 success, 1 processing failure,
// 2 argument validation failure, 3 output flush failure, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fastasplit")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fastasplit version %s\n", version.Version)
		return 0
	}

	if err := cli.Validate(opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Chunks > 0 {
		cmdutil.Infof(outw, opts.Quiet, "Start reading %s", opts.InputFile)
		total, err := fasta.CountRecords(opts.InputFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if total == 0 {
			_, _ = fmt.Fprintf(stderr, "%s has no FASTA entries, nothing to split\n", opts.InputFile)
			return 1
		}
		cmdutil.Infof(outw, opts.Quiet, "%s has %d FASTA entries", opts.InputFile, total)
		chunkSize := (total + opts.Chunks - 1) / opts.Chunks
		cmdutil.Infof(outw, opts.Quiet, "Dividing %s in %d chunks of %d entries", opts.InputFile, opts.Chunks, chunkSize)
		_ = outw.Flush()
		if _, err := split.ByCount(parent, opts.InputFile, int64(chunkSize), opts.OutputDir, split.DefaultLineWidth); err != nil {
			return fail(stderr, err)
		}
	} else {
		cmdutil.Infof(outw, opts.Quiet, "Start creating chunks")
		_ = outw.Flush()
		if _, err := split.ByMaxSize(parent, opts.InputFile, opts.MaxFileSize, opts.OutputDir, split.DefaultLineWidth); err != nil {
			return fail(stderr, err)
		}
	}

	cmdutil.Infof(outw, opts.Quiet, "Done")
	if e := outw.Flush(); e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 1
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
