package fetch

import (
	"net/http"

	"go.trai.ch/dist/internal/core/ports"
)

// S3API exposes the client interface for test doubles.
type S3API = s3API

// NewHTTPFetcherWithClient exposes newHTTPFetcherWithClient for testing.
func NewHTTPFetcherWithClient(url string, client *http.Client) ports.CatalogFetcher {
	return newHTTPFetcherWithClient(url, client)
}

// NewS3FetcherWithClient exposes newS3FetcherWithClient for testing.
func NewS3FetcherWithClient(bucket, key string, client S3API) ports.CatalogFetcher {
	return newS3FetcherWithClient(bucket, key, client)
}
