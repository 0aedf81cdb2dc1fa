// Package fetch retrieves the raw catalog manifest from its configured source.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/url"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

// MaxManifestSize bounds the number of bytes read from any catalog source.
const MaxManifestSize = 16 << 20

// limitManifest lets one byte past MaxManifestSize through so that an oversized
// source can be told apart from one of exactly the limit.
func limitManifest(r io.Reader) io.Reader {
	return io.LimitReader(r, MaxManifestSize+1)
}

// checkManifestSize rejects data read through limitManifest that hit the limit.
// An oversized manifest is discarded whole, never parsed truncated.
func checkManifestSize(data []byte) error {
	if len(data) <= MaxManifestSize {
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrMalformedCatalog, "manifest exceeds size limit"), "size_limit", MaxManifestSize)
}

var _ ports.CatalogFetcher = Unconfigured{}

// New returns the fetcher for rawURL based on its scheme.
// An empty URL yields an Unconfigured fetcher.
func New(rawURL string) (ports.CatalogFetcher, error) {
	if rawURL == "" {
		return Unconfigured{}, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Join(domain.ErrUnsupportedCatalogSource, zerr.With(zerr.Wrap(err, "invalid catalog url"), "url", rawURL))
	}

	switch u.Scheme {
	case "http", "https":
		return NewHTTPFetcher(rawURL), nil
	case "file":
		return NewFileFetcher(u.Path), nil
	case "s3":
		if u.Host == "" || len(u.Path) <= 1 {
			return nil, errors.Join(domain.ErrUnsupportedCatalogSource, zerr.With(zerr.New("s3 url needs a bucket and a key"), "url", rawURL))
		}
		return NewS3Fetcher(u.Host, u.Path[1:]), nil
	default:
		return nil, errors.Join(domain.ErrUnsupportedCatalogSource, zerr.With(zerr.New("unknown scheme"), "url", rawURL))
	}
}

// Unconfigured is the fetcher used when no catalog URL is set.
type Unconfigured struct{}

// Fetch always fails with domain.ErrCatalogNotConfigured.
func (Unconfigured) Fetch(context.Context) ([]byte, error) {
	return nil, zerr.Wrap(domain.ErrCatalogNotConfigured, "set catalog.url in config.yaml or DIST_CATALOG_URL")
}

var _ ports.CatalogFetcher = Broken{}

// Broken is the fetcher used when the configured URL cannot be served.
// The error surfaces only when a command actually needs the catalog.
type Broken struct {
	Err error
}

// Fetch returns the configuration error.
func (b Broken) Fetch(context.Context) ([]byte, error) {
	return nil, b.Err
}
