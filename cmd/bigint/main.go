package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigint/internal/version"
)

// main runs the root command and exits with status 1 on any error.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run builds a fresh command tree and executes it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stderr: stderr}
	return execute(ctx, a, newRootCmd(a), args, stdout)
}

// execute runs root and releases the tracer whether or not the command
// succeeded. Cobra reports command errors itself; a failure while finishing
// is reported here.
func execute(ctx context.Context, a *app, root *cobra.Command, args []string, stdout io.Writer) error {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if finishErr := a.finish(err); finishErr != nil {
		printf(a.stderr, "Error: %v\n", finishErr)
		if err == nil {
			err = finishErr
		}
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "bigint",
		Short:        "Arbitrary-precision integer calculator",
		Long:         `bigint evaluates integer expressions of unbounded size and converts numbers between bases 2 to 36`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "path to bigint.toml (default: search upward from the working directory)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("trace", "", "write trace events to file ('-' for stderr)")
	root.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")

	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newSelftestCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}

func printf(w io.Writer, format string, args ...any) {
	// Output errors surface when the command exits; nothing useful to do here.
	_, _ = fmt.Fprintf(w, format, args...) //nolint:errcheck
}
