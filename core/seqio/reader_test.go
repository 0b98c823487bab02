package seqio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const plainFastq = "@r1\nACGT\n+\nIIII\n@r2\nAC\n+\n!!\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func gzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func zstded(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("write zstd: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zstd: %v", err)
	}
	return buf.Bytes()
}

func headers(t *testing.T, f *File) []string {
	t.Helper()
	var hs []string
	err := Each(context.Background(), f, func(r Record) error {
		hs = append(hs, r.Header)
		return nil
	})
	require.NoError(t, err)
	return hs
}

func TestOpenPlainFasta(t *testing.T) {
	path := writeFile(t, "x.fa", []byte(">a\nAC\n>b\nGT\n"))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, FASTA, f.Format)
	require.Equal(t, []string{">a", ">b"}, headers(t, f))
}

func TestOpenGzipBySuffixAndMagic(t *testing.T) {
	data := gzipped(t, plainFastq)
	for _, name := range []string{"reads.fq.gz", "reads.fq"} {
		f, err := Open(writeFile(t, name, data))
		require.NoError(t, err, name)
		require.Equal(t, FASTQ, f.Format)
		require.Equal(t, []string{"@r1", "@r2"}, headers(t, f))
		require.NoError(t, f.Close())
	}
}

func TestOpenZstd(t *testing.T) {
	f, err := Open(writeFile(t, "reads.fq.zst", zstded(t, plainFastq)))
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, FASTQ, f.Format)
	require.Len(t, headers(t, f), 2)
}

func TestOpenStdinPipe(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	data := gzipped(t, plainFastq)
	go func() {
		_, _ = w.Write(data)
		_ = w.Close()
	}()

	f, err := Open("-")
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, FASTQ, f.Format)
	require.Equal(t, []string{"@r1", "@r2"}, headers(t, f))
}

func TestOpenUnknownFormat(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello\n"))
	_, err := Open(path)
	require.ErrorIs(t, err, ErrUnknownFormat)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "Unknown file format: "+path, err.Error())
}

func TestOpenEmpty(t *testing.T) {
	_, err := Open(writeFile(t, "empty.fa", nil))
	require.ErrorIs(t, err, ErrEmpty)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.fa"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromReaderDoesNotClose(t *testing.T) {
	f, err := FromReader("buf", strings.NewReader(">a\nA\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, "buf", f.Path)
}

func TestEachStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f, err := FromReader("buf", strings.NewReader(">a\nA\n"))
	require.NoError(t, err)
	n := 0
	err = Each(ctx, f, func(Record) error { n++; return nil })
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, n)
}

func TestEachPropagatesCallbackError(t *testing.T) {
	stop := errors.New("stop")
	f, err := FromReader("buf", strings.NewReader(">a\nA\n>b\nC\n"))
	require.NoError(t, err)
	n := 0
	err = Each(context.Background(), f, func(Record) error { n++; return stop })
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, n)
}

func TestNewReaderInvalid(t *testing.T) {
	_, err := NewReader(NewLineReader(io.MultiReader()), Invalid)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
