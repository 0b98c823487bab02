// internal/chunkapp/app.go
package chunkapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"flatfile-core/chunk"
	"flatfile-core/seqio"

	"flatfile/internal/chunkcli"
	"flatfile/internal/config"
	"flatfile/internal/logging"
	"flatfile/internal/version"
	"flatfile/internal/writers"
)

const name = "seqchunk"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := chunkcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := chunkcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return writers.FlushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return writers.FlushCode(outw, stderr, 0)
	}

	cfg := config.FromEnv(os.Getenv)
	logger := logging.New(stderr, name, cfg.Level(opts.Verbose, opts.Quiet))

	f, err := seqio.Open(opts.File)
	switch {
	case err == nil:
	case errors.Is(err, seqio.ErrEmpty):
		logger.Debug("no sequence content", "file", opts.File)
		return 0
	default:
		logger.Error(err.Error())
		return 1
	}
	defer func() { _ = f.Close() }()

	st, err := chunk.Run(parent, f, f.Format, opts.Spec, outw)
	code := 0
	switch {
	case err == nil:
		logger.Debug("chunked", "file", opts.File, "format", f.Format,
			"records", st.Records, "chunks", st.Blocks, "size", opts.Spec.Size, "sliding", opts.Spec.Sliding)
	case errors.Is(err, context.Canceled):
		code = 130
	case writers.IsBrokenPipe(err):
		return 0
	default:
		logger.Error(err.Error())
		code = 1
	}
	return writers.FlushCode(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
