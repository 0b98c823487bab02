package seqio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat matches every *FormatError.
	ErrUnknownFormat = errors.New("unknown file format")
	// ErrEmpty is returned when a stream holds no content line at all.
	ErrEmpty = errors.New("no sequence content")
	// ErrTruncated reports a FASTQ record cut short by end of input.
	ErrTruncated = errors.New("truncated FASTQ record")
)

// FormatError reports an input whose first content line is neither a FASTA
// header nor a well-framed FASTQ record.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string { return fmt.Sprintf("Unknown file format: %s", e.Path) }

func (e *FormatError) Unwrap() error { return ErrUnknownFormat }
