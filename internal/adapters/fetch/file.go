package fetch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogFetcher = (*FileFetcher)(nil)

// FileFetcher reads the manifest from the local file system.
type FileFetcher struct {
	path string
}

// NewFileFetcher creates a FileFetcher for path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: filepath.Clean(path)}
}

// Fetch reads the file. A missing or unreadable file wraps domain.ErrNetwork so
// that it degrades like any other unreachable source. A file over MaxManifestSize
// is domain.ErrMalformedCatalog.
func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path) //nolint:gosec // Path comes from the user's config
	if err != nil {
		return nil, errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "failed to open catalog file"), "path", f.path))
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	data, err := io.ReadAll(limitManifest(file))
	if err != nil {
		return nil, errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "failed to read catalog file"), "path", f.path))
	}
	if err := checkManifestSize(data); err != nil {
		return nil, zerr.With(err, "path", f.path)
	}
	return data, nil
}
