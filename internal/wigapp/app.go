// internal/wigapp/app.go
package wigapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"flatfile-core/seqio"
	"flatfile-core/wig"

	"flatfile/internal/config"
	"flatfile/internal/logging"
	"flatfile/internal/version"
	"flatfile/internal/wigcli"
	"flatfile/internal/writers"
)

const name = "wig2varstep"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := wigcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := wigcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return 0
	}

	cfg := config.FromEnv(os.Getenv)
	logger := logging.New(stderr, name, cfg.Level(opts.Verbose, opts.Quiet))

	in, err := seqio.OpenReader(opts.Input)
	if err != nil {
		logger.Error(err.Error())
		return 1
	}
	defer func() { _ = in.Close() }()

	dst := stdout
	if opts.Output != "" {
		fh, err := os.Create(opts.Output)
		if err != nil {
			logger.Error(err.Error())
			return 1
		}
		defer func() {
			if cerr := fh.Close(); cerr != nil {
				logger.Error(cerr.Error())
			}
		}()
		dst = fh
	}
	outw := bufio.NewWriter(dst)

	st, err := wig.Convert(parent, in, outw)
	code := 0
	switch {
	case err == nil:
		logger.Debug("converted", "file", opts.Input, "blocks", st.Blocks, "points", st.Points)
	case errors.Is(err, context.Canceled):
		code = 130
	case writers.IsBrokenPipe(err):
		return 0
	default:
		logger.Error(fmt.Sprintf("%s: %v", opts.Input, err))
		code = 1
	}
	return writers.FlushCode(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
