// core/chunk/run.go
package chunk

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"flatfile-core/seqio"
)

// Stats counts what Run read and wrote.
type Stats struct {
	Records int
	Blocks  int
}

// Writer frames blocks as "<header> - <index>" followed by the sequence, and
// for FASTQ a "+" line and the quality.
type Writer struct {
	w     io.Writer
	fastq bool
	buf   []byte
}

func NewWriter(w io.Writer, format seqio.Format) *Writer {
	return &Writer{w: w, fastq: format == seqio.FASTQ}
}

func (cw *Writer) Write(header string, b Block) error {
	buf := append(cw.buf[:0], header...)
	buf = append(buf, " - "...)
	buf = strconv.AppendInt(buf, int64(b.Index), 10)
	buf = append(buf, '\n')
	buf = append(buf, b.Seq...)
	buf = append(buf, '\n')
	if cw.fastq {
		buf = append(buf, "+\n"...)
		buf = append(buf, b.Qual...)
		buf = append(buf, '\n')
	}
	cw.buf = buf
	_, err := cw.w.Write(buf)
	return err
}

// Run chunks every record of r and writes the blocks to w as it goes.
func Run(ctx context.Context, r seqio.Reader, format seqio.Format, s Spec, w io.Writer) (Stats, error) {
	var st Stats
	if err := s.Validate(); err != nil {
		return st, err
	}
	switch format {
	case seqio.FASTA, seqio.FASTQ:
	case seqio.Invalid:
		return st, seqio.ErrUnknownFormat
	default:
		return st, fmt.Errorf("chunk: unsupported format %v", format)
	}

	cw := NewWriter(w, format)
	err := seqio.Each(ctx, r, func(rec seqio.Record) error {
		st.Records++
		return Split(rec, s, func(b Block) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			st.Blocks++
			return cw.Write(rec.Header, b)
		})
	})
	return st, err
}
