package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// InstalledStore lists the versions present in the local installation store.
type InstalledStore interface {
	// List returns the installed version identifiers. An absent store yields an empty list.
	List(ctx context.Context) ([]string, error)
}

// PointerStorage persists the active version pointer.
type PointerStorage interface {
	// Read returns the active version, or "" when no version is active.
	Read(ctx context.Context) (string, error)

	// Write atomically replaces the active version.
	Write(ctx context.Context, version string) error
}
