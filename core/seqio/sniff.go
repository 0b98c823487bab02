package seqio

import (
	"io"
	"strings"
)

// Sniff classifies the stream behind lr from its first content line. Blank
// and '#' lines are skipped. Every line Sniff consumes is pushed back onto lr,
// so a Reader built on lr afterwards sees the stream from the beginning.
//
// A '@' header is FASTQ only when the line two below it starts with '+'.
// A stream without any content line yields ErrEmpty.
func Sniff(lr *LineReader) (Format, error) {
	var seen []string
	defer func() { lr.Unread(seen...) }()

	next := func() (string, error) {
		line, err := lr.Next()
		if err == nil {
			seen = append(seen, line)
		}
		return line, err
	}

	for {
		line, err := next()
		if err == io.EOF {
			return Invalid, ErrEmpty
		}
		if err != nil {
			return Invalid, err
		}
		if skippable(line) {
			continue
		}
		switch line[0] {
		case '>':
			return FASTA, nil
		case '@':
			if _, err := next(); err == io.EOF {
				return Invalid, nil
			} else if err != nil {
				return Invalid, err
			}
			plus, err := next()
			if err == io.EOF {
				return Invalid, nil
			} else if err != nil {
				return Invalid, err
			}
			if strings.HasPrefix(plus, "+") {
				return FASTQ, nil
			}
			return Invalid, nil
		default:
			return Invalid, nil
		}
	}
}
