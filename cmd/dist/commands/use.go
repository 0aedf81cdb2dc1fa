package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/dist/internal/app"
	"go.trai.ch/dist/internal/core/domain"
)

func (c *CLI) newUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <version>",
		Short: "Set an installed distribution as the active one",
		Args:  versionArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")

			res, err := c.app.Use(cmd.Context(), args[0], app.Options{Timeout: timeout})
			if err != nil {
				return err
			}

			RenderUse(newOutput(cmd.OutOrStdout()), res)
			return useOutcome(res)
		},
	}

	cmd.Flags().Duration("timeout", 0, "Catalog fetch timeout (default from config)")

	return cmd
}

// useOutcome maps a rendered result to the error that carries its exit code.
func useOutcome(res app.UseResult) error {
	switch res.Resolution.Classification {
	case domain.ClassificationCatalogOnly:
		return errors.Join(domain.ErrOutcomeReported, domain.ErrNotInstalled)
	case domain.ClassificationUnknown:
		return errors.Join(domain.ErrOutcomeReported, domain.ErrVersionNotFound)
	case domain.ClassificationAlreadyActive, domain.ClassificationInstalledInactive:
	}
	return nil
}
