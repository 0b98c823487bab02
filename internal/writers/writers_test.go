package writers

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("expected broken pipe errors to be recognised")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Fatal("unexpected broken pipe match")
	}
}

func TestFlushCode(t *testing.T) {
	var stderr bytes.Buffer

	w := bufio.NewWriter(failWriter{err: syscall.EPIPE})
	_, _ = w.WriteString("x")
	if got := FlushCode(w, &stderr, 1); got != 1 {
		t.Fatalf("broken pipe should keep code, got %d", got)
	}

	w = bufio.NewWriter(failWriter{err: errors.New("disk full")})
	_, _ = w.WriteString("x")
	if got := FlushCode(w, &stderr, 0); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if stderr.Len() == 0 {
		t.Fatal("expected error on stderr")
	}

	var out bytes.Buffer
	w = bufio.NewWriter(&out)
	_, _ = w.WriteString("ok")
	if got := FlushCode(w, &stderr, 0); got != 0 || out.String() != "ok" {
		t.Fatalf("flush: code=%d out=%q", got, out.String())
	}
}

func TestExitCodeForWrite(t *testing.T) {
	if ExitCodeForWrite(nil) != 0 || ExitCodeForWrite(syscall.EPIPE) != 0 || ExitCodeForWrite(errors.New("x")) != 3 {
		t.Fatal("unexpected exit code mapping")
	}
}
