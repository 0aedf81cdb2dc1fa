package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/dist/internal/app"
	"go.trai.ch/dist/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <version>",
		Short: "Show how a version would be resolved without changing anything",
		Args:  versionArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")

			res, err := c.app.Resolve(cmd.Context(), args[0], app.Options{Timeout: timeout})
			if err != nil {
				return err
			}

			RenderResolve(newOutput(cmd.OutOrStdout()), res)
			if res.Resolution.Classification == domain.ClassificationUnknown {
				return errors.Join(domain.ErrOutcomeReported, domain.ErrVersionNotFound)
			}
			return nil
		},
	}

	cmd.Flags().Duration("timeout", 0, "Catalog fetch timeout (default from config)")

	return cmd
}
