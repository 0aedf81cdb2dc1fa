package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Linker = (*SymlinkLinker)(nil)

// SymlinkLinker maintains <home>/current as a relative symlink into the distributions directory.
type SymlinkLinker struct {
	layout domain.Layout
}

// NewSymlinkLinker creates a new SymlinkLinker.
func NewSymlinkLinker(layout domain.Layout) *SymlinkLinker {
	return &SymlinkLinker{layout: layout}
}

// Target returns the version the current link points at, or "" when there is no link.
func (l *SymlinkLinker) Target(_ context.Context) (string, error) {
	path := l.layout.CurrentLink()
	dest, err := os.Readlink(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read current link"), "path", path)
	}
	return filepath.Base(dest), nil
}

// Link replaces the current link with one pointing at version.
// The new link is created beside the old one and renamed over it, so readers
// never observe a missing link.
func (l *SymlinkLinker) Link(ctx context.Context, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(l.layout.Home, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create dist home"), "path", l.layout.Home)
	}

	target := filepath.Join(domain.DistributionsDirName, version)
	tmp := filepath.Join(l.layout.Home, fmt.Sprintf(".%s-%d-%d", domain.CurrentLinkName, os.Getpid(), time.Now().UnixNano()))

	if err := os.Symlink(target, tmp); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create link"), "path", tmp)
	}

	if err := os.Rename(tmp, l.layout.CurrentLink()); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, "failed to replace current link"), "version", version)
	}

	return nil
}

// Unlink removes the current link.
func (l *SymlinkLinker) Unlink(_ context.Context) error {
	path := l.layout.CurrentLink()
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove current link"), "path", path)
	}
	return nil
}
