// internal/wigcli/options.go
package wigcli

import (
	"errors"
	"flag"
	"fmt"

	"flatfile/internal/cliutil"
	"flatfile/internal/version"
)

// Options holds the wig2varstep flags and input.
type Options struct {
	Input  string
	Output string // "" = STDOUT

	Verbose bool
	Quiet   bool
	Version bool
}

// NewFlagSet returns a FlagSet with the wig2varstep usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – convert WIG fixedStep blocks to variableStep\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s <wigfile> [-o output]\n\n", name)
		fmt.Fprintln(out, "Format reference: https://m.ensembl.org/info/website/upload/wig.html")
		fmt.Fprintln(out, "\nFlags:")
		fmt.Fprintln(out, "  -o, --output file    Write output to file [STDOUT]")
		fmt.Fprintln(out, "  -v, --verbose        Debug logging on STDERR")
		fmt.Fprintln(out, "  -q, --quiet          Only log errors")
		fmt.Fprintln(out, "      --version        Print version and exit")
		fmt.Fprintln(out, "  -h, --help           Show this help and exit")
	}
	return fs
}

// ParseArgs registers the flags on fs and parses argv.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", "", "output file [STDOUT]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
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
	if len(posArgs) != 1 {
		return opt, errors.New("exactly one input WIG file is required")
	}
	opt.Input = posArgs[0]
	return opt, nil
}
