package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// algorithmsCommand lists the available layout algorithms.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List layout algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), algorithmTable())
			return err
		},
	}
}
