package lenstatscli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFilesAndFlagsInAnyOrder(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"a.fa", "--summary", "b.fq.gz", "--strict"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(o.Files) != 2 || o.Files[0] != "a.fa" || o.Files[1] != "b.fq.gz" || !o.Summary || !o.Strict {
		t.Fatalf("bad parse %+v", o)
	}
}

func TestNoFiles(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--summary"})
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--bogus", "a.fa"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestJSONLConflictsWithSummary(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-v", "--jsonl", "a.fa"})
	if err != nil || !o.JSONL || !o.Verbose {
		t.Fatalf("jsonl: %+v %v", o, err)
	}
	if _, err := ParseArgs(newFS(), []string{"--jsonl", "--summary", "a.fa"}); err == nil {
		t.Fatal("expected --jsonl/--summary conflict")
	}
}
