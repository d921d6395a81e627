package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Resolve dependencies and write the lock directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := cmd.Flags().GetString("chdir")
			if err != nil {
				return err
			}
			return c.app.Lock(cmd.Context(), cwd)
		},
	}
}
