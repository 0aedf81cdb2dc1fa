// Package app implements the application layer for dist.
package app

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/dist/internal/engine/activator"
	"go.trai.ch/dist/internal/engine/registry"
	"go.trai.ch/dist/internal/engine/resolver"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver  *resolver.Resolver
	activator *activator.Activator
	registry  *registry.Registry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	res *resolver.Resolver,
	act *activator.Activator,
	reg *registry.Registry,
	log ports.Logger,
) *App {
	return &App{
		resolver:  res,
		activator: act,
		registry:  reg,
		logger:    log,
	}
}

// Options configures a single command.
type Options struct {
	// Timeout overrides the configured catalog fetch timeout when positive.
	Timeout time.Duration
}

// ResolveResult is the outcome of Resolve.
type ResolveResult struct {
	Resolution domain.Resolution
	// Suggestions holds the nearest catalog versions for Unknown resolutions.
	Suggestions []string
}

// UseResult is the outcome of Use.
type UseResult struct {
	Resolution domain.Resolution
	// Activation is set when an installed version was switched to.
	Activation *domain.ActivationResult
	// Suggestions holds the nearest catalog versions for Unknown resolutions.
	Suggestions []string
}

// ListOptions configures List.
type ListOptions struct {
	// All adds the catalog channels to the listing.
	All     bool
	Timeout time.Duration
}

// ListResult is the outcome of List.
type ListResult struct {
	Installed domain.VersionSet
	Active    domain.ActivePointer
	// Catalog is nil unless All was requested and the catalog could be fetched.
	Catalog *domain.Catalog
	// CatalogErr records why Catalog is nil when All was requested.
	CatalogErr error
}

// Resolve classifies version without changing anything.
func (a *App) Resolve(ctx context.Context, version string, opts Options) (ResolveResult, error) {
	res, err := a.resolver.Resolve(ctx, version, resolver.WithTimeout(opts.Timeout))
	if err != nil {
		return ResolveResult{}, err
	}
	a.warnAmbiguous(res)

	out := ResolveResult{Resolution: res}
	if res.Classification == domain.ClassificationUnknown {
		out.Suggestions = Suggest(version, res.CatalogVersions)
	}
	return out, nil
}

// Use makes version the active distribution when it is installed.
// Published but uninstalled and unknown versions are reported through the result,
// not as errors.
func (a *App) Use(ctx context.Context, version string, opts Options) (UseResult, error) {
	res, err := a.resolver.Resolve(ctx, version, resolver.WithTimeout(opts.Timeout))
	if err != nil {
		return UseResult{}, err
	}
	a.warnAmbiguous(res)

	out := UseResult{Resolution: res}
	switch res.Classification {
	case domain.ClassificationInstalledInactive:
		act, err := a.activator.Activate(ctx, version)
		out.Activation = &act
		if err != nil {
			return out, err
		}
	case domain.ClassificationUnknown:
		out.Suggestions = Suggest(version, res.CatalogVersions)
	case domain.ClassificationAlreadyActive, domain.ClassificationCatalogOnly:
	}
	return out, nil
}

// Current reports the active distribution.
func (a *App) Current(ctx context.Context) (domain.CurrentVersion, error) {
	return a.resolver.Current(ctx)
}

// List reports the installed versions and, with All, the catalog.
// The installed scan, the pointer read and the catalog fetch run concurrently.
// A catalog failure is logged as a warning and does not fail the listing.
func (a *App) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	var out ListResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		installed, err := a.registry.ListInstalled(gctx)
		out.Installed = installed
		return err
	})
	g.Go(func() error {
		cur, err := a.resolver.Current(gctx)
		out.Active = cur.Active
		return err
	})
	if opts.All {
		// A failed local read must not cancel the fetch, so it runs on ctx.
		g.Go(func() error {
			out.Catalog, out.CatalogErr = a.resolver.FetchCatalog(ctx, opts.Timeout)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ListResult{}, err
	}

	if out.CatalogErr != nil {
		a.logger.Warn("catalog unavailable, listing installed distributions only: " + summarize(out.CatalogErr))
	}
	return out, nil
}

func (a *App) warnAmbiguous(res domain.Resolution) {
	if res.Match == nil || !res.Match.Ambiguous() {
		return
	}
	a.logger.Warn("version " + res.Requested + " is published in several channels, using " +
		res.Match.Channel + " (also in " + strings.Join(res.Match.AlsoIn, ", ") + ")")
}

// summarize returns the outermost message of an error chain.
func summarize(err error) string {
	if z, ok := err.(interface{ Message() string }); ok { //nolint:errorlint // Only the top-level message is wanted
		return z.Message()
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // Walks the join one level
		for _, e := range joined.Unwrap() {
			if e != nil {
				return summarize(e)
			}
		}
	}
	return err.Error()
}
