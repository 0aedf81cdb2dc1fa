// Package lock provides the cross-process activation lock.
package lock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultRetryDelay is how often a contended lock is polled.
const DefaultRetryDelay = 50 * time.Millisecond

var _ ports.Locker = (*FileLocker)(nil)

// FileLocker holds an advisory flock on a file under the dist home.
type FileLocker struct {
	path       string
	retryDelay time.Duration
}

// NewFileLocker creates a FileLocker for the lock file at path.
func NewFileLocker(path string) *FileLocker {
	return &FileLocker{path: filepath.Clean(path), retryDelay: DefaultRetryDelay}
}

// Lock polls for the lock until it is held or ctx is done.
func (l *FileLocker) Lock(ctx context.Context) (func() error, error) {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "failed to create lock directory"), "path", dir))
	}

	fl := flock.New(l.path)
	locked, err := fl.TryLockContext(ctx, l.retryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Join(domain.ErrLockTimeout, zerr.With(zerr.Wrap(ctxErr, "lock wait ended"), "path", l.path))
		}
		return nil, errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "failed to lock"), "path", l.path))
	}
	if !locked {
		return nil, errors.Join(domain.ErrLockTimeout, zerr.With(zerr.New("lock not acquired"), "path", l.path))
	}

	return func() error {
		if err := fl.Unlock(); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unlock"), "path", l.path)
		}
		return nil
	}, nil
}
