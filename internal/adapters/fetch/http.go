package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher downloads the manifest with a GET request.
type HTTPFetcher struct {
	url        string
	httpClient *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher using http.DefaultTransport.
// The request deadline comes from the caller's context.
func NewHTTPFetcher(url string) *HTTPFetcher {
	return newHTTPFetcherWithClient(url, &http.Client{})
}

// newHTTPFetcherWithClient creates an HTTPFetcher with a custom http client (used for testing).
func newHTTPFetcherWithClient(url string, client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{url: url, httpClient: client}
}

// Fetch performs the request. Transport failures and non-200 responses wrap domain.ErrNetwork.
// A body over MaxManifestSize is domain.ErrMalformedCatalog.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "failed to build catalog request"), "url", f.url))
	}
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9, */*;q=0.5")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "catalog request failed"), "url", f.url))
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected catalog response"), "status_code", resp.StatusCode)
		return nil, errors.Join(domain.ErrNetwork, zerr.With(statusErr, "url", f.url))
	}

	body, err := io.ReadAll(limitManifest(resp.Body))
	if err != nil {
		return nil, errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "failed to read catalog response"), "url", f.url))
	}
	if err := checkManifestSize(body); err != nil {
		return nil, zerr.With(err, "url", f.url)
	}
	return body, nil
}
