package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigint/internal/selftest"
)

func newSelftestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in arithmetic scenario suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stop := a.timer.Start("selftest")
			sum := selftest.Run(cmd.OutOrStdout(), selftest.Checks(), selftest.Options{Color: a.color, Quiet: a.quiet})
			stop(fmt.Sprintf("%d passed, %d failed", sum.Passed, sum.Failed))
			if !sum.OK() {
				return fmt.Errorf("%d checks failed", sum.Failed)
			}
			return nil
		},
	}
}
