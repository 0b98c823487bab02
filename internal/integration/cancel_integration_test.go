package integration

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"flatfile/internal/chunkapp"
	"flatfile/internal/lenstatsapp"
	"flatfile/internal/wigapp"
)

func TestCancelledRunsExit130(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "big.fa"), ">chr1\n"+strings.Repeat("ACGT", 1<<16)+"\n")
	wg := write(t, filepath.Join(dir, "x.wig"), "fixedStep chrom=c start=1 step=1\n1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := chunkapp.RunContext(ctx, []string{fa, "-c", "8", "-s"}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("seqchunk: expected exit 130 on cancel, got %d", code)
	}
	if code := lenstatsapp.RunContext(ctx, []string{fa}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("seqlenstats: expected exit 130 on cancel, got %d", code)
	}
	if code := wigapp.RunContext(ctx, []string{wg}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("wig2varstep: expected exit 130 on cancel, got %d", code)
	}
}
