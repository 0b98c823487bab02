// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Stream encodes values of type T as JSON lines on a background goroutine,
// so producers can hand off results as soon as they exist.
type Stream[T any] struct {
	in   chan T
	done chan error
}

// Start launches the encoder. encode converts one value to its wire type and
// encodes it; errors for which isBroken reports true (a closed pipe) end the
// stream quietly.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) *Stream[T] {
	if bufSize <= 0 {
		bufSize = 16
	}
	s := &Stream[T]{in: make(chan T, bufSize), done: make(chan error, 1)}

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range s.in {
			if err != nil {
				continue // drain so Send never blocks forever
			}
			err = encode(enc, v)
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken(err) {
			err = nil
		}
		s.done <- err
	}()
	return s
}

// Send queues v for encoding.
func (s *Stream[T]) Send(v T) { s.in <- v }

// Close stops accepting values, waits for the encoder and returns its first
// error.
func (s *Stream[T]) Close() error {
	close(s.in)
	return <-s.done
}
