package domain

// Classification is the outcome of resolving a requested version.
type Classification int

const (
	// ClassificationAlreadyActive means the requested version is the active one.
	ClassificationAlreadyActive Classification = iota
	// ClassificationInstalledInactive means the version is installed but not active.
	ClassificationInstalledInactive
	// ClassificationCatalogOnly means the version is published but not installed.
	ClassificationCatalogOnly
	// ClassificationUnknown means the version is neither installed nor published.
	ClassificationUnknown
)

// String returns the lower-case name of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationAlreadyActive:
		return "already-active"
	case ClassificationInstalledInactive:
		return "installed"
	case ClassificationCatalogOnly:
		return "catalog-only"
	case ClassificationUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Resolution is the structured result of classifying a requested version.
type Resolution struct {
	// Requested is the version token as given by the caller.
	Requested string
	// Classification is the outcome.
	Classification Classification
	// Active is the pointer observed at the start of resolution.
	Active ActivePointer
	// DanglingActive is set when the installed scan showed the active version is not installed.
	DanglingActive bool
	// Match is the catalog entry for CatalogOnly results.
	Match *Match
	// CatalogVersions lists the catalog versions when the catalog was consulted.
	CatalogVersions []string
	// CatalogDigest identifies the manifest consulted, if any.
	CatalogDigest string
}

// CurrentVersion describes the active distribution as seen by the current command.
type CurrentVersion struct {
	// Active is the pointer read from the store.
	Active ActivePointer
	// Dangling is set when the active version is no longer installed.
	Dangling bool
}
