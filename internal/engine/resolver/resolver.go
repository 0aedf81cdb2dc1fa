// Package resolver classifies a requested version against the local state and the catalog.
package resolver

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/dist/internal/engine/active"
	"go.trai.ch/dist/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Resolver classifies versions. It never mutates state.
type Resolver struct {
	active   *active.Store
	registry *registry.Registry
	fetcher  ports.CatalogFetcher
	parser   ports.CatalogParser
	tracer   ports.Tracer
	timeout  time.Duration
}

// New creates a Resolver. A nil fetcher means no catalog is configured;
// a zero timeout leaves catalog fetches bounded only by the caller's context.
func New(
	activeStore *active.Store,
	reg *registry.Registry,
	fetcher ports.CatalogFetcher,
	parser ports.CatalogParser,
	tracer ports.Tracer,
	timeout time.Duration,
) *Resolver {
	return &Resolver{
		active:   activeStore,
		registry: reg,
		fetcher:  fetcher,
		parser:   parser,
		tracer:   tracer,
		timeout:  timeout,
	}
}

type options struct {
	catalog *domain.Catalog
	timeout time.Duration
}

// Option configures a single resolution.
type Option func(*options)

// WithCatalog supplies an already fetched catalog, skipping the fetch.
func WithCatalog(c *domain.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithTimeout overrides the catalog fetch timeout for one call.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Resolve classifies requested. Checks run in a fixed order and stop at the first hit:
// the active pointer, then the installed set, then the catalog.
func (r *Resolver) Resolve(ctx context.Context, requested string, opts ...Option) (domain.Resolution, error) {
	o := options{timeout: r.timeout}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("version", requested)

	res, err := r.resolve(ctx, requested, o)
	if err != nil {
		span.RecordError(err)
		return domain.Resolution{}, err
	}
	span.SetAttribute("classification", res.Classification.String())
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, requested string, o options) (domain.Resolution, error) {
	if requested == "" {
		return domain.Resolution{}, zerr.Wrap(domain.ErrInvalidVersion, "version must not be empty")
	}

	res := domain.Resolution{Requested: requested}

	ptr, err := r.active.GetActive(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}
	res.Active = ptr
	if ptr.Matches(requested) {
		res.Classification = domain.ClassificationAlreadyActive
		return res, nil
	}

	installed, err := r.registry.ListInstalled(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}
	res.DanglingActive = ptr.IsSet() && !installed.Contains(ptr.Version())
	if installed.Contains(requested) {
		res.Classification = domain.ClassificationInstalledInactive
		return res, nil
	}

	catalog := o.catalog
	if catalog == nil {
		catalog, err = r.fetchCatalog(ctx, o.timeout)
		if err != nil {
			return domain.Resolution{}, err
		}
	}
	res.CatalogVersions = catalog.Versions()
	res.CatalogDigest = catalog.Digest()

	if match, ok := catalog.FindVersion(requested); ok {
		res.Classification = domain.ClassificationCatalogOnly
		res.Match = &match
		return res, nil
	}

	res.Classification = domain.ClassificationUnknown
	return res, nil
}

// Current returns the active pointer and whether it dangles.
func (r *Resolver) Current(ctx context.Context) (domain.CurrentVersion, error) {
	ptr, err := r.active.GetActive(ctx)
	if err != nil {
		return domain.CurrentVersion{}, err
	}
	if !ptr.IsSet() {
		return domain.CurrentVersion{Active: ptr}, nil
	}

	installed, err := r.registry.ListInstalled(ctx)
	if err != nil {
		return domain.CurrentVersion{}, err
	}
	return domain.CurrentVersion{
		Active:   ptr,
		Dangling: !installed.Contains(ptr.Version()),
	}, nil
}

// FetchCatalog fetches and parses the catalog, bounded by timeout when it is positive.
func (r *Resolver) FetchCatalog(ctx context.Context, timeout time.Duration) (*domain.Catalog, error) {
	if timeout <= 0 {
		timeout = r.timeout
	}
	return r.fetchCatalog(ctx, timeout)
}

func (r *Resolver) fetchCatalog(ctx context.Context, timeout time.Duration) (*domain.Catalog, error) {
	if r.fetcher == nil {
		return nil, errors.Join(domain.ErrCatalogUnavailable, domain.ErrCatalogNotConfigured)
	}

	ctx, span := r.tracer.Start(ctx, "catalog.fetch")
	defer span.End()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	raw, err := r.fetcher.Fetch(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(err, ctxErr)
		}
		return nil, errors.Join(domain.ErrCatalogUnavailable, zerr.With(zerr.Wrap(err, "catalog fetch failed"), "timeout", timeout.String()))
	}

	catalog, err := r.parser.Parse(raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("digest", catalog.Digest())
	return catalog, nil
}
