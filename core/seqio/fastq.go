package seqio

import (
	"fmt"
	"io"
	"strings"
)

// FastqReader yields four-line FASTQ records. Blank and comment lines are
// skipped only while looking for a header; the three lines after a header are
// taken as they come.
type FastqReader struct {
	lr *LineReader
}

func NewFastqReader(lr *LineReader) *FastqReader {
	return &FastqReader{lr: lr}
}

func (r *FastqReader) Read() (Record, error) {
	var header string
	for {
		line, err := r.lr.Next()
		if err != nil {
			return Record{}, err
		}
		if skippable(line) {
			continue
		}
		header = strings.TrimSpace(line)
		break
	}

	var body [3]string // sequence, separator, quality
	for i := range body {
		line, err := r.lr.Next()
		if err == io.EOF {
			return Record{}, fmt.Errorf("%w: %s", ErrTruncated, header)
		}
		if err != nil {
			return Record{}, err
		}
		body[i] = line
	}
	return Record{
		Header: header,
		Seq:    []byte(strings.TrimSpace(body[0])),
		Qual:   []byte(strings.TrimSpace(body[2])),
	}, nil
}
