// internal/lenstatsapp/app.go
package lenstatsapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"flatfile-core/lenstats"

	"flatfile/internal/config"
	"flatfile/internal/jsonlutil"
	"flatfile/internal/lenstatscli"
	"flatfile/internal/logging"
	"flatfile/internal/version"
	"flatfile/internal/writers"
)

const name = "seqlenstats"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := lenstatscli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stderr)
		fs.Usage()
		return 1
	}

	opts, err := lenstatscli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return writers.FlushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		if errors.Is(err, lenstatscli.ErrNoFiles) {
			return 1
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return writers.FlushCode(outw, stderr, 0)
	}

	cfg := config.FromEnv(os.Getenv)
	logger := logging.New(stderr, name, cfg.Level(opts.Verbose, opts.Quiet))

	var stream *jsonlutil.Stream[lenstats.Summary]
	if opts.JSONL {
		stream = writers.StartSummaryJSONLWriter(outw, 0)
	}

	rep, err := lenstats.Aggregate(parent, opts.Files, lenstats.Options{
		Strict: opts.Strict,
		OnSkip: func(path string, err error) {
			logger.Warn(err.Error())
		},
		OnFile: func(c lenstats.Column) {
			logger.Debug("counted", "file", c.Name, "format", c.Format, "records", c.Hist.Records())
			if stream != nil {
				stream.Send(c.Summary())
			}
		},
	})
	if stream != nil {
		if werr := stream.Close(); werr != nil && err == nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return 3
		}
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		logger.Error(err.Error())
		return 1
	}

	switch {
	case opts.JSONL:
	case opts.Summary:
		err = lenstats.WriteSummaryTSV(outw, rep.Summaries())
	default:
		err = rep.WriteTSV(outw)
	}
	if err != nil {
		if code := writers.ExitCodeForWrite(err); code != 0 {
			_, _ = fmt.Fprintln(stderr, err)
			return code
		}
		return 0
	}
	return writers.FlushCode(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
