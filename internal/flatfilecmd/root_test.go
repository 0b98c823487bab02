package flatfilecmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"flatfile/internal/version"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Execute(context.Background(), args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestChunkSubcommandForwardsFlags(t *testing.T) {
	fa := filepath.Join(t.TempDir(), "x.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">s\nACGTA\n"), 0o644))

	code, out, stderr := execute(t, "chunk", fa, "-c", "2")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, ">s - 0\nAC\n>s - 1\nGT\n>s - 2\nA\n", out)
}

func TestLengthsSubcommandExitCode(t *testing.T) {
	code, out, stderr := execute(t, "lengths")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "Usage:")
}

func TestVersionSubcommand(t *testing.T) {
	code, out, _ := execute(t, "version")
	require.Equal(t, 0, code)
	require.Equal(t, "flatfile version "+version.Version+"\n", out)
}

func TestUnknownSubcommand(t *testing.T) {
	code, _, stderr := execute(t, "frobnicate")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "unknown command")
}

func TestRootListsTools(t *testing.T) {
	names := map[string]bool{}
	for _, c := range NewRootCommand().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"lengths", "chunk", "wig", "version"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}
