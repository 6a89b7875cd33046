package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <type> [type2]",
		Short: "Print the superclass chain of a type, or the common ancestor of two",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				common, err := c.app.CommonSuperClass(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), common.String())
				return nil
			}

			chain, err := c.app.ResolveChain(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			parts := make([]string, len(chain))
			for i, t := range chain {
				parts[i] = t.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " <- "))
			return nil
		},
	}
}
