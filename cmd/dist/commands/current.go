package commands

import "github.com/spf13/cobra"

func (c *CLI) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active distribution",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur, err := c.app.Current(cmd.Context())
			if err != nil {
				return err
			}

			RenderCurrent(newOutput(cmd.OutOrStdout()), cur)
			return nil
		},
	}
}
