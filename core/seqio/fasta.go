package seqio

import (
	"io"
	"strings"
)

// FastaReader yields FASTA records, joining wrapped sequence lines.
type FastaReader struct {
	lr      *LineReader
	header  string
	seq     []byte
	started bool
}

func NewFastaReader(lr *LineReader) *FastaReader {
	return &FastaReader{lr: lr}
}

// Read returns the next record, or io.EOF after the last one. A record is
// complete when the next header or the end of input is reached.
func (r *FastaReader) Read() (Record, error) {
	for {
		line, err := r.lr.Next()
		if err == io.EOF {
			if !r.started {
				return Record{}, io.EOF
			}
			r.started = false
			return r.take(""), nil
		}
		if err != nil {
			return Record{}, err
		}
		if skippable(line) {
			continue
		}
		text := strings.TrimSpace(line)
		if line[0] == '>' {
			if r.started {
				return r.take(text), nil
			}
			r.started = true
			r.header = text
			continue
		}
		if !r.started {
			continue
		}
		r.seq = append(r.seq, text...)
	}
}

// take hands the accumulated record to the caller and starts the next one.
func (r *FastaReader) take(nextHeader string) Record {
	rec := Record{Header: r.header, Seq: r.seq}
	if rec.Seq == nil {
		rec.Seq = []byte{}
	}
	r.header = nextHeader
	r.seq = nil
	return rec
}
