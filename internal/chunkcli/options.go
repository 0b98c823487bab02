// internal/chunkcli/options.go
package chunkcli

import (
	"errors"
	"flag"
	"fmt"

	"flatfile-core/chunk"

	"flatfile/internal/cliutil"
	"flatfile/internal/version"
)

// Options holds the seqchunk flags and input.
type Options struct {
	File string
	Spec chunk.Spec

	Verbose bool
	Quiet   bool
	Version bool
}

// NewFlagSet returns a FlagSet with the seqchunk usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – split FASTA/FASTQ sequences into chunks\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s <fasta/fastq> -c <size> [-s]\n\n", name)
		fmt.Fprintln(out, "Each chunk is labelled \"<header> - <index>\"; FASTQ chunks keep their quality.")
		fmt.Fprintln(out, "\nFlags:")
		fmt.Fprintln(out, "  -c, --chunk-size int     Chunk length (required, ≥ 1)")
		fmt.Fprintln(out, "  -s, --sliding-window     Overlapping windows advanced by one base")
		fmt.Fprintln(out, "  -v, --verbose            Debug logging on STDERR")
		fmt.Fprintln(out, "  -q, --quiet              Only log errors")
		fmt.Fprintln(out, "      --version            Print version and exit")
		fmt.Fprintln(out, "  -h, --help               Show this help and exit")
	}
	return fs
}

// ParseArgs registers the flags on fs and parses argv.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Spec.Size, "chunk-size", 0, "chunk length (required)")
	fs.IntVar(&opt.Spec.Size, "c", 0, "alias of --chunk-size")
	fs.BoolVar(&opt.Spec.Sliding, "sliding-window", false, "overlapping windows [false]")
	fs.BoolVar(&opt.Spec.Sliding, "s", false, "alias of --sliding-window")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Verbose, "v", false, "alias of --verbose")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	switch len(posArgs) {
	case 0:
		return opt, errors.New("an input FASTA/FASTQ file is required")
	case 1:
		opt.File = posArgs[0]
	default:
		return opt, fmt.Errorf("exactly one input file is allowed, got %d", len(posArgs))
	}
	if !cliutil.WasSet(fs, "c", "chunk-size") {
		return opt, errors.New("--chunk-size is required")
	}
	if err := opt.Spec.Validate(); err != nil {
		return opt, fmt.Errorf("--chunk-size: %w", err)
	}
	return opt, nil
}
