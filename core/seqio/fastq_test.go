package seqio

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFastqRecords(t *testing.T) {
	in := "@r1 desc\nACGT\n+\nIIII\n\n# between records\n@r2\nGG\n+r2\n!!\n"
	recs := readAll(t, NewFastqReader(NewLineReader(strings.NewReader(in))))
	require.Len(t, recs, 2)
	require.Equal(t, Record{Header: "@r1 desc", Seq: []byte("ACGT"), Qual: []byte("IIII")}, recs[0])
	require.Equal(t, "@r2", recs[1].Header)
	require.Equal(t, "!!", string(recs[1].Qual))
}

func TestFastqQualityMatchesSequenceLength(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		n := i%17 + 1
		fmt.Fprintf(&b, "@read%d\n%s\n+\n%s\n", i, strings.Repeat("ACGT", n)[:n], strings.Repeat("#", n))
	}
	recs := readAll(t, NewFastqReader(NewLineReader(strings.NewReader(b.String()))))
	require.Len(t, recs, 50)
	for _, r := range recs {
		require.Equal(t, len(r.Seq), len(r.Qual), r.Header)
	}
}

func TestFastqTruncated(t *testing.T) {
	r := NewFastqReader(NewLineReader(strings.NewReader("@r1\nACGT\n+\nIIII\n@r2\nAC\n")))
	_, err := r.Read()
	require.NoError(t, err)
	_, err = r.Read()
	require.ErrorIs(t, err, ErrTruncated)
	require.Contains(t, err.Error(), "@r2")
}

func TestFastqInteriorBlankLineIsTakenAsIs(t *testing.T) {
	// framing is positional once a header is found
	r := NewFastqReader(NewLineReader(strings.NewReader("@r1\n\nACGT\n+\n")))
	rec, err := r.Read()
	require.NoError(t, err)
	require.Empty(t, rec.Seq)
	require.Equal(t, "+", string(rec.Qual))
}
