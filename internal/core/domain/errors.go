package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCatalog is returned when a catalog manifest cannot be decoded or violates its structure.
	ErrMalformedCatalog = zerr.New("malformed catalog manifest")

	// ErrDuplicateVersion is returned when a channel lists the same version more than once.
	ErrDuplicateVersion = zerr.New("duplicate version in channel")

	// ErrNetwork is returned when the catalog transport fails.
	ErrNetwork = zerr.New("network error while fetching catalog")

	// ErrCatalogUnavailable is returned when a classification needs the catalog and it cannot be obtained.
	ErrCatalogUnavailable = zerr.New("catalog unavailable")

	// ErrCatalogNotConfigured is returned when no catalog source is configured.
	ErrCatalogNotConfigured = zerr.New("no catalog source configured")

	// ErrUnsupportedCatalogSource is returned when the catalog URL scheme has no fetcher.
	ErrUnsupportedCatalogSource = zerr.New("unsupported catalog source")

	// ErrInvalidVersion is returned when a requested version identifier is empty or malformed.
	ErrInvalidVersion = zerr.New("invalid version identifier")

	// ErrVersionNotFound is returned when a version is neither installed nor in the catalog.
	ErrVersionNotFound = zerr.New("distribution not found")

	// ErrNotInstalled is returned when activation is requested for a version that is not installed.
	ErrNotInstalled = zerr.New("distribution is not installed")

	// ErrInstalledStoreReadFailed is returned when the installation store cannot be scanned.
	ErrInstalledStoreReadFailed = zerr.New("failed to read installation store")

	// ErrPointerReadFailed is returned when the active pointer cannot be read.
	ErrPointerReadFailed = zerr.New("failed to read active pointer")

	// ErrPersist is returned when the active pointer or the environment link cannot be updated.
	ErrPersist = zerr.New("failed to persist active distribution")

	// ErrLinkFailed is returned when the current-version indirection cannot be updated.
	ErrLinkFailed = zerr.New("failed to update current distribution link")

	// ErrCorruptedState is returned when a failed activation could not be rolled back.
	ErrCorruptedState = zerr.New("active distribution state is corrupted")

	// ErrActivationConflict is returned when another activation changed the active pointer first.
	ErrActivationConflict = zerr.New("active distribution changed by a concurrent activation")

	// ErrLockTimeout is returned when the activation lock cannot be acquired in time.
	ErrLockTimeout = zerr.New("timed out waiting for activation lock")

	// ErrLockFailed is returned when the activation lock cannot be created or released.
	ErrLockFailed = zerr.New("failed to operate activation lock")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrHomeNotResolved is returned when the dist home directory cannot be determined.
	ErrHomeNotResolved = zerr.New("failed to resolve dist home directory")

	// ErrUsage is returned when a command is invoked with invalid arguments.
	ErrUsage = zerr.New("invalid usage")

	// ErrOutcomeReported marks an error whose outcome was already rendered to the user.
	ErrOutcomeReported = zerr.New("outcome already reported")
)
