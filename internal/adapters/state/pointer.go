// Package state persists the active distribution pointer.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PointerStorage = (*PointerFile)(nil)

// Record is the on-disk shape of the active pointer.
type Record struct {
	Version     string    `json:"version"`
	ActivatedAt time.Time `json:"activated_at"`
}

// PointerFile implements ports.PointerStorage using a flat JSON file.
type PointerFile struct {
	path string
	now  func() time.Time
}

// NewPointerFile creates a PointerFile backed by the file at the given path.
func NewPointerFile(path string) *PointerFile {
	return &PointerFile{path: filepath.Clean(path), now: time.Now}
}

// Read returns the active version, or "" when the file does not exist or is empty.
func (p *PointerFile) Read(ctx context.Context) (string, error) {
	rec, err := p.load(ctx)
	if err != nil {
		return "", err
	}
	return rec.Version, nil
}

func (p *PointerFile) load(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	//nolint:gosec // Path is cleaned and derived from the dist home
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, zerr.With(zerr.Wrap(err, "failed to read pointer file"), "path", p.path)
	}

	if len(data) == 0 {
		return Record{}, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, zerr.With(zerr.Wrap(err, "failed to unmarshal pointer file"), "path", p.path)
	}
	return rec, nil
}

// Write replaces the pointer file. The document is written to a temporary file in
// the same directory and renamed into place.
func (p *PointerFile) Write(_ context.Context, version string) error {
	data, err := json.MarshalIndent(Record{Version: version, ActivatedAt: p.now().UTC()}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal pointer file")
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for pointer file"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(p.path)+"-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary pointer file"), "path", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort; absent after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write pointer file"), "path", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to sync pointer file"), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close pointer file"), "path", tmpName)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set pointer file permissions"), "path", tmpName)
	}

	if err := os.Rename(tmpName, p.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace pointer file"), "path", p.path)
	}
	return nil
}
