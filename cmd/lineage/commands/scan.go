package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Walk the configured classpath and report on every type found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Scan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "classfiles: %d\n", report.Classfiles)
			fmt.Fprintf(out, "types:      %d\n", report.Types)
			fmt.Fprintf(out, "resolved:   %d\n", report.Resolved)
			for _, t := range report.Unresolved {
				fmt.Fprintf(out, "unresolved: %s\n", t)
			}
			for _, dup := range report.Duplicates {
				state := "identical"
				if !dup.Identical {
					state = "divergent"
				}
				fmt.Fprintf(out, "duplicate:  %s (%s) %v\n", dup.Name, state, dup.Paths)
			}
			return nil
		},
	}
}
