package domain

import "time"

const (
	// DefaultFetchTimeout bounds a catalog fetch when nothing else is configured.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultLockTimeout bounds the wait for the activation lock.
	DefaultLockTimeout = 30 * time.Second
)

// Settings is the resolved configuration of a dist invocation.
type Settings struct {
	// Layout locates the files under the dist home.
	Layout Layout
	// CatalogURL is the catalog manifest location (http, https, file or s3 scheme).
	CatalogURL string
	// FetchTimeout bounds each catalog fetch.
	FetchTimeout time.Duration
	// LockTimeout bounds the wait for the activation lock.
	LockTimeout time.Duration
}

// DefaultSettings returns settings rooted at home with default timeouts.
func DefaultSettings(home string) Settings {
	return Settings{
		Layout:       NewLayout(home),
		FetchTimeout: DefaultFetchTimeout,
		LockTimeout:  DefaultLockTimeout,
	}
}
