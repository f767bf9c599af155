package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bigint/internal/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] <file>...",
		Short: "Evaluate expression files in parallel",
		Long: `Evaluate every non-blank line of each file as an expression.
Lines starting with # are comments. The command fails if any line fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args)
		},
	}
	cmd.Flags().Int("base", 10, "output base for integer results (2..36)")
	cmd.Flags().Int("jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	cmd.Flags().Bool("disk-cache", false, "reuse results of unchanged files across runs")
	cmd.Flags().Bool("clear-cache", false, "drop every cached result before running (implies --disk-cache)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, files []string) error {
	files = uniquePaths(files)
	flags := cmd.Flags()
	opts := batch.Options{
		Jobs: a.cfg.Batch.Jobs,
		Base: a.outputBase(cmd),
	}
	if flags.Changed("jobs") {
		opts.Jobs, _ = flags.GetInt("jobs") //nolint:errcheck
	}

	useCache := a.cfg.Batch.DiskCache
	if flags.Changed("disk-cache") {
		useCache, _ = flags.GetBool("disk-cache") //nolint:errcheck
	}
	clearCache, _ := flags.GetBool("clear-cache") //nolint:errcheck
	if useCache || clearCache {
		cache, err := batch.OpenDiskCache("bigint")
		if err != nil {
			return fmt.Errorf("open disk cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear disk cache: %w", err)
			}
		}
		opts.Cache = cache
	}

	uiMode, err := modeSetting(flags, "ui", a.cfg.Batch.UI)
	if err != nil {
		return err
	}

	stop := a.timer.Start("batch")
	var results []batch.FileResult
	if !a.quiet && uiMode.enabled(func() bool { return isTerminal(os.Stdout) }) {
		results, err = runBatchWithUI(cmd.Context(), "bigint batch", files, opts)
	} else {
		results, err = batch.Run(cmd.Context(), files, opts)
	}
	stop(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}

	failed := printBatchResults(cmd.OutOrStdout(), results, a.quiet)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// printBatchResults writes one line per evaluated expression and returns the
// number of failed files. Quiet mode prints failures only.
func printBatchResults(w io.Writer, results []batch.FileResult, quiet bool) int {
	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
		if res.Err != nil {
			printf(w, "%s: error: %v\n", res.Path, res.Err)
			continue
		}
		for _, line := range res.Lines {
			switch {
			case line.Err != "":
				printf(w, "%s:%d: error: %s\n", res.Path, line.Line, line.Err)
			case !quiet:
				printf(w, "%s:%d: %s = %s\n", res.Path, line.Line, line.Expr, line.Output)
			}
		}
	}
	return failed
}

// uniquePaths drops repeated arguments, keeping the first occurrence.
func uniquePaths(files []string) []string {
	seen := make(map[string]bool, len(files))
	out := files[:0:0]
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
