package ports

import "context"

// Locker provides mutual exclusion for activations across processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// Lock blocks until the lock is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context) (unlock func() error, err error)
}
