package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAssignableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignable <type1> <type2>",
		Short: "Report whether type1 is assignable from type2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := c.app.Assignable(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}
