package seqio

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads lines without their terminators and lets callers push
// lines back to be returned again, in order, by the following Next calls.
type LineReader struct {
	br      *bufio.Reader
	pending []string
	eof     bool
}

func NewLineReader(r io.Reader) *LineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &LineReader{br: br}
	}
	return &LineReader{br: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next line with "\n" or "\r\n" removed, or io.EOF.
// A final line without a trailing newline is still returned.
func (lr *LineReader) Next() (string, error) {
	if n := len(lr.pending); n > 0 {
		line := lr.pending[0]
		lr.pending = lr.pending[1:]
		return line, nil
	}
	if lr.eof {
		return "", io.EOF
	}
	line, err := lr.br.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		lr.eof = true
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Unread pushes lines back so that lines[0] is returned by the next Next.
func (lr *LineReader) Unread(lines ...string) {
	if len(lines) == 0 {
		return
	}
	lr.pending = append(append(make([]string, 0, len(lines)+len(lr.pending)), lines...), lr.pending...)
}

// skippable reports blank (whitespace-only) and '#' comment lines.
func skippable(line string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")
}
