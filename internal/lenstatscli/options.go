// internal/lenstatscli/options.go
package lenstatscli

import (
	"errors"
	"flag"
	"fmt"

	"flatfile/internal/cliutil"
	"flatfile/internal/version"
)

// ErrNoFiles is returned when no input file is named.
var ErrNoFiles = errors.New("at least one FASTA/FASTQ file is required")

// Options holds the seqlenstats flags and inputs.
type Options struct {
	Files   []string
	Summary bool
	JSONL   bool
	Strict  bool

	Verbose bool
	Quiet   bool
	Version bool
}

// NewFlagSet returns a FlagSet with the seqlenstats usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – summarize read lengths as TSV\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] <fasta/fastq>...\n\n", name)
		fmt.Fprintln(out, "Input files may be plain, gzip (.gz) or zstd (.zst); '-' reads STDIN.")
		fmt.Fprintln(out, "\nFlags:")
		fmt.Fprintln(out, "      --summary       Print per-file totals (records, bases, min, max, mean, N50) instead of the length matrix")
		fmt.Fprintln(out, "      --jsonl         Stream per-file totals as JSON lines while files are read")
		fmt.Fprintln(out, "      --strict        Abort on a file of unknown format instead of skipping it")
		fmt.Fprintln(out, "  -v, --verbose       Debug logging on STDERR")
		fmt.Fprintln(out, "  -q, --quiet         Only log errors")
		fmt.Fprintln(out, "      --version       Print version and exit")
		fmt.Fprintln(out, "  -h, --help          Show this help and exit")
	}
	return fs
}

// ParseArgs registers the flags on fs and parses argv. Flags may appear
// before or after file names; globs are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Summary, "summary", false, "print per-file summary [false]")
	fs.BoolVar(&opt.JSONL, "jsonl", false, "stream per-file summary as JSON lines [false]")
	fs.BoolVar(&opt.Strict, "strict", false, "abort on unknown file format [false]")
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
	if opt.JSONL && opt.Summary {
		return opt, errors.New("--jsonl and --summary are mutually exclusive")
	}

	files, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	if len(files) == 0 {
		return opt, ErrNoFiles
	}
	opt.Files = files
	return opt, nil
}
