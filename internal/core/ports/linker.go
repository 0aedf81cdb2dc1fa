package ports

import "context"

// Linker maintains the current-version indirection used by the environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// Target returns the version the indirection points at, or "" when there is none.
	Target(ctx context.Context) (string, error)

	// Link points the indirection at version, replacing any previous target.
	Link(ctx context.Context, version string) error

	// Unlink removes the indirection. Removing a missing indirection is not an error.
	Unlink(ctx context.Context) error
}
