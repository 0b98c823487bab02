// Package flatfilecmd is the cobra front end that bundles every tool as a
// subcommand of a single "flatfile" binary.
package flatfilecmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"flatfile/internal/chunkapp"
	"flatfile/internal/lenstatsapp"
	"flatfile/internal/version"
	"flatfile/internal/wigapp"
)

// RunFunc is the entry point shape shared by the tool apps.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// ExitError carries a non-zero exit code out of a subcommand.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// NewRootCommand builds the flatfile command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flatfile",
		Short:         "Streaming tools for FASTA, FASTQ and WIG flat files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		toolCommand("lengths <fasta/fastq>...", "Tabulate sequence lengths per file as TSV", lenstatsapp.RunContext),
		toolCommand("chunk <fasta/fastq> -c <size> [-s]", "Split sequences into fixed or sliding-window chunks", chunkapp.RunContext),
		toolCommand("wig <wigfile> [-o output]", "Convert WIG fixedStep blocks to variableStep", wigapp.RunContext),
		&cobra.Command{
			Use:   "version",
			Short: "Print version and exit",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "flatfile version %s\n", version.Version)
			},
		},
	)
	return root
}

// toolCommand wraps a tool app. Flag parsing stays with the app, so the
// subcommand accepts exactly the flags of the standalone binary.
func toolCommand(use, short string, run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
}

// Execute runs the command tree on argv and returns the process exit code.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	var exit *ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.Code
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
}
