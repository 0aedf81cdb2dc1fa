// Package registry answers which distributions are installed locally.
package registry

import (
	"context"
	"errors"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry is a read-only view over the installation store.
// Every call queries the store again; nothing is cached between calls.
type Registry struct {
	store ports.InstalledStore
}

// New creates a Registry over store.
func New(store ports.InstalledStore) *Registry {
	return &Registry{store: store}
}

// ListInstalled returns the installed version set.
func (r *Registry) ListInstalled(ctx context.Context) (domain.VersionSet, error) {
	versions, err := r.store.List(ctx)
	if err != nil {
		return domain.VersionSet{}, errors.Join(domain.ErrInstalledStoreReadFailed, err)
	}
	return domain.NewVersionSet(versions), nil
}

// IsInstalled reports whether version is installed.
func (r *Registry) IsInstalled(ctx context.Context, version string) (bool, error) {
	if version == "" {
		return false, zerr.Wrap(domain.ErrInvalidVersion, "version must not be empty")
	}
	set, err := r.ListInstalled(ctx)
	if err != nil {
		return false, err
	}
	return set.Contains(version), nil
}
