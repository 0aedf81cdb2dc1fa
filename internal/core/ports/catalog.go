// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/dist/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// CatalogFetcher retrieves the raw catalog manifest.
type CatalogFetcher interface {
	// Fetch returns the manifest bytes. It must honor ctx cancellation and deadlines.
	Fetch(ctx context.Context) ([]byte, error)
}

// CatalogParser turns raw manifest bytes into a validated catalog.
type CatalogParser interface {
	// Parse returns either a catalog or an error wrapping domain.ErrMalformedCatalog
	// or domain.ErrDuplicateVersion, never both.
	Parse(raw []byte) (*domain.Catalog, error)
}
