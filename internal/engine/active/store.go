// Package active reads and writes the active distribution pointer.
package active

import (
	"context"
	"errors"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store wraps the pointer storage with domain semantics.
// It does not validate versions; callers check installation first.
type Store struct {
	storage ports.PointerStorage
}

// New creates a Store over storage.
func New(storage ports.PointerStorage) *Store {
	return &Store{storage: storage}
}

// GetActive returns the current pointer.
func (s *Store) GetActive(ctx context.Context) (domain.ActivePointer, error) {
	version, err := s.storage.Read(ctx)
	if err != nil {
		return domain.ActivePointer{}, errors.Join(domain.ErrPointerReadFailed, err)
	}
	return domain.NewActivePointer(version), nil
}

// SetActive overwrites the pointer with version.
func (s *Store) SetActive(ctx context.Context, version string) error {
	if err := s.storage.Write(ctx, version); err != nil {
		return errors.Join(domain.ErrPersist, zerr.With(zerr.Wrap(err, "failed to write active pointer"), "version", version))
	}
	return nil
}
