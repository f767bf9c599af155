package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bigint/internal/calc"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] <expr>...",
		Short: "Evaluate integer expressions",
		Long: `Evaluate one or more integer expressions and print each result.

Supported operators: + - * / % and the comparisons == != < <= > >=.
Literals may be decimal, 0x/0o/0b prefixed, or written as base#digits (36#ZZ).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := a.outputBase(cmd)
			defer a.timer.Start("eval")(fmt.Sprintf("%d expressions", len(args)))

			out := cmd.OutOrStdout()
			for _, expr := range args {
				res, err := calc.Eval(cmd.Context(), expr)
				if err != nil {
					return fmt.Errorf("%s: %w", strings.TrimSpace(expr), err)
				}
				text, err := res.Text(base)
				if err != nil {
					return err
				}
				printf(out, "%s\n", text)
			}
			return nil
		},
	}
	cmd.Flags().Int("base", 10, "output base for integer results (2..36)")
	return cmd
}
