package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dist/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed distributions",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			res, err := c.app.List(cmd.Context(), app.ListOptions{All: all, Timeout: timeout})
			if err != nil {
				return err
			}

			RenderList(newOutput(cmd.OutOrStdout()), res)
			return nil
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Include the distributions published in the catalog")
	cmd.Flags().Duration("timeout", 0, "Catalog fetch timeout (default from config)")

	return cmd
}
