package writers

import (
	"bufio"
	"fmt"
	"io"
)

// FlushCode flushes w and returns code. A broken pipe on flush is not an
// error (the reader went away); any other flush error is printed to stderr
// and turns into exit code 3.
func FlushCode(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// ExitCodeForWrite maps an error returned while writing output to an exit
// code: 0 for nil or broken pipe, 3 otherwise.
func ExitCodeForWrite(err error) int {
	if err == nil || IsBrokenPipe(err) {
		return 0
	}
	return 3
}
