// core/lenstats/report.go
package lenstats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flatfile-core/seqio"
)

var (
	// ErrEmptyInput is returned for a file that yields no records.
	ErrEmptyInput = errors.New("no sequences found")
	// ErrNoInput is returned when every input file was skipped.
	ErrNoInput = errors.New("no readable sequence files")
)

// Column is one input file of the report.
type Column struct {
	Name   string
	Format seqio.Format
	Hist   Histogram
}

// Report holds one histogram column per readable input, in input order.
type Report struct {
	Columns []Column
}

// Options control how Aggregate treats unrecognised inputs.
type Options struct {
	// Strict aborts on the first file of unknown format instead of skipping it.
	Strict bool
	// OnSkip, if set, is told about every skipped file.
	OnSkip func(path string, err error)
	// OnFile, if set, is called after each file has been counted.
	OnFile func(c Column)
}

// Aggregate builds a Report from paths. Files of unknown format are skipped
// (or abort the run with Options.Strict) and left out of the columns. Empty
// files fail with ErrEmptyInput; I/O errors abort with the path attached.
func Aggregate(ctx context.Context, paths []string, opt Options) (*Report, error) {
	rep := &Report{}
	for _, path := range paths {
		col, err := countFile(ctx, path)
		switch {
		case err == nil:
		case errors.Is(err, seqio.ErrUnknownFormat) && !opt.Strict:
			if opt.OnSkip != nil {
				opt.OnSkip(path, err)
			}
			continue
		default:
			return nil, err
		}
		if opt.OnFile != nil {
			opt.OnFile(col)
		}
		rep.Columns = append(rep.Columns, col)
	}
	if len(rep.Columns) == 0 {
		return nil, ErrNoInput
	}
	return rep, nil
}

func countFile(ctx context.Context, path string) (Column, error) {
	f, err := seqio.Open(path)
	if errors.Is(err, seqio.ErrEmpty) {
		return Column{}, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}
	if err != nil {
		return Column{}, err
	}
	defer func() { _ = f.Close() }()

	h, err := Count(ctx, f)
	if err != nil {
		return Column{}, fmt.Errorf("%s: %w", path, err)
	}
	if h.Records() == 0 {
		return Column{}, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}
	return Column{Name: path, Format: f.Format, Hist: h}, nil
}

// MaxLength is the longest sequence over all columns. A column without
// records makes the maximum undefined and yields ErrEmptyInput.
func (r *Report) MaxLength() (int, error) {
	if len(r.Columns) == 0 {
		return 0, ErrNoInput
	}
	longest := 0
	for _, c := range r.Columns {
		m, ok := c.Hist.Max()
		if !ok {
			return 0, fmt.Errorf("%s: %w", c.Name, ErrEmptyInput)
		}
		if m > longest {
			longest = m
		}
	}
	return longest, nil
}

// WriteTSV writes the length matrix: a "sequence_length" header naming each
// column, then one row for every length from 1 to MaxLength.
func (r *Report) WriteTSV(w io.Writer) error {
	longest, err := r.MaxLength()
	if err != nil {
		return err
	}
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	if _, err := fmt.Fprintf(w, "sequence_length\t%s\n", strings.Join(names, "\t")); err != nil {
		return err
	}

	row := make([]byte, 0, 16+8*len(r.Columns))
	for l := 1; l <= longest; l++ {
		row = strconv.AppendInt(row[:0], int64(l), 10)
		for _, c := range r.Columns {
			row = append(row, '\t')
			row = strconv.AppendInt(row, int64(c.Hist[l]), 10)
		}
		row = append(row, '\n')
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
