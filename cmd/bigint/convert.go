package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigint/internal/bigint"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "convert --from A --to B <number>...",
		Short: "Convert numbers between bases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("to") {
				to = a.cfg.Output.Base
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				v, err := bigint.ParseBase(arg, from)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				text, err := v.Text(to)
				if err != nil {
					return err
				}
				if a.quiet {
					printf(out, "%s\n", text)
					continue
				}
				printf(out, "%s (base %d) = %s (base %d)\n", arg, from, text, to)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of the input numbers (2..36)")
	cmd.Flags().IntVar(&to, "to", 10, "base of the output numbers (2..36)")
	return cmd
}
