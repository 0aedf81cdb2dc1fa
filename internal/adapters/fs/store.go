// Package fs provides file system adapters for the installation store and the current link.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InstalledStore = (*InstalledStore)(nil)

// InstalledStore lists the distributions unpacked under <home>/distributions.
type InstalledStore struct {
	layout domain.Layout
}

// NewInstalledStore creates a new InstalledStore.
func NewInstalledStore(layout domain.Layout) *InstalledStore {
	return &InstalledStore{layout: layout}
}

// List yields one version per directory entry, sorted by name.
// A missing distributions directory is an empty store.
func (s *InstalledStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := s.layout.DistributionsDir()
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read distributions directory"), "path", root)
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.shouldSkip(root, entry) {
			continue
		}
		versions = append(versions, entry.Name())
	}
	sort.Strings(versions)

	return versions, nil
}

// shouldSkip reports whether entry is not an installed distribution.
func (s *InstalledStore) shouldSkip(root string, entry iofs.DirEntry) bool {
	name := entry.Name()

	// Hidden entries are partial unpacks or editor droppings.
	if strings.HasPrefix(name, ".") {
		return true
	}

	if entry.IsDir() {
		return false
	}

	if entry.Type()&iofs.ModeSymlink == 0 {
		return true
	}

	info, err := os.Stat(filepath.Join(root, name))
	return err != nil || !info.IsDir()
}
