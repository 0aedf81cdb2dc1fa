package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/zerr"
)

// versionArg requires exactly one version argument.
func versionArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return zerr.With(zerr.Wrap(domain.ErrUsage, "a distribution version is required"), "command", cmd.Name())
	case len(args) > 1:
		return zerr.With(zerr.Wrap(domain.ErrUsage, "too many arguments"), "command", cmd.Name())
	default:
		return nil
	}
}

// noArgs rejects positional arguments.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return zerr.With(zerr.Wrap(domain.ErrUsage, "too many arguments"), "command", cmd.Name())
	}
	return nil
}
