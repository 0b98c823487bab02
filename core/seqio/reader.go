package seqio

import (
	"context"
	"fmt"
	"io"
)

// Reader is a single-pass record iterator; Read returns io.EOF when done.
type Reader interface {
	Read() (Record, error)
}

// NewReader returns the record reader for f. Sniff must have run on lr first.
func NewReader(lr *LineReader, f Format) (Reader, error) {
	switch f {
	case FASTA:
		return NewFastaReader(lr), nil
	case FASTQ:
		return NewFastqReader(lr), nil
	case Invalid:
		return nil, ErrUnknownFormat
	default:
		return nil, fmt.Errorf("seqio: unsupported format %d", int(f))
	}
}

// Each calls fn for every record of r. It stops at io.EOF (returning nil), at
// the first error from r or fn, or when ctx is done.
func Each(ctx context.Context, r Reader, fn func(Record) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// File is an opened, sniffed sequence file.
type File struct {
	Path   string
	Format Format
	Reader

	rc io.Closer
}

// Open opens path (see OpenReader), sniffs its format, and returns a File
// ready for reading. Unrecognised input is closed and reported as a
// *FormatError; input without any content line as ErrEmpty.
func Open(path string) (*File, error) {
	rc, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	f, err := newFile(path, rc)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return f, nil
}

// FromReader sniffs r, which is not closed by File.Close.
func FromReader(name string, r io.Reader) (*File, error) {
	return newFile(name, io.NopCloser(r))
}

func newFile(path string, rc io.ReadCloser) (*File, error) {
	lr := NewLineReader(rc)
	format, err := Sniff(lr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rd, err := NewReader(lr, format)
	if err != nil {
		return nil, &FormatError{Path: path}
	}
	return &File{Path: path, Format: format, Reader: rd, rc: rc}, nil
}

func (f *File) Close() error { return f.rc.Close() }
