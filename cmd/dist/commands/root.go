// Package commands implements the CLI commands for the dist version manager.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dist/internal/adapters/detector"
	"go.trai.ch/dist/internal/app"
	"go.trai.ch/dist/internal/build"
	"go.trai.ch/dist/internal/core/domain"
)

// CLI represents the command line interface for dist.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	formatter LogFormatter
	tracing   app.Tracing
	logFormat string
	trace     bool
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, version string, opts app.Options) (app.ResolveResult, error)
	Use(ctx context.Context, version string, opts app.Options) (app.UseResult, error)
	Current(ctx context.Context) (domain.CurrentVersion, error)
	List(ctx context.Context, opts app.ListOptions) (app.ListResult, error)
}

// LogFormatter switches the diagnostic log format.
type LogFormatter interface {
	SetJSON(enable bool)
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogFormatter applies --log-format to f.
func WithLogFormatter(f LogFormatter) Option {
	return func(c *CLI) {
		c.formatter = f
	}
}

// WithTracing applies --trace to t.
func WithTracing(t app.Tracing) Option {
	return func(c *CLI) {
		c.tracing = t
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dist",
		Short:         "Manage the active toolchain distribution",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(domain.ErrUsage, err)
	})

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "auto", "Diagnostic log format: auto, pretty or json")
	rootCmd.PersistentFlags().BoolVar(&c.trace, "trace", false, "Log span timings for resolution and activation")
	rootCmd.PersistentPreRunE = c.applyGlobalFlags

	rootCmd.AddCommand(c.newUseCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCurrentCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyGlobalFlags(_ *cobra.Command, _ []string) error {
	format, err := detector.ResolveFormat(detector.DetectEnvironment(), c.logFormat)
	if err != nil {
		return err
	}
	if c.formatter != nil {
		c.formatter.SetJSON(format == detector.FormatJSON)
	}
	if c.tracing != nil {
		c.tracing.SetEnabled(c.trace)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
