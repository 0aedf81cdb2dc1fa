// Package main is the entry point for the dist version manager.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/cmd/dist/commands"
	"go.trai.ch/dist/internal/app"
	"go.trai.ch/dist/internal/core/domain"
	_ "go.trai.ch/dist/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.CodeOf(err).ExitCode()
	}
	defer cleanup()

	// 2. Interface - CLI
	opts := []commands.Option{commands.WithTracing(components.Tracing)}
	if f, ok := components.Logger.(commands.LogFormatter); ok {
		opts = append(opts, commands.WithLogFormatter(f))
	}
	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if !errors.Is(err, domain.ErrOutcomeReported) {
			components.Logger.Error(err)
		}
		return domain.CodeOf(err).ExitCode()
	}
	return 0
}
