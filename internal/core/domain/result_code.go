package domain

import "errors"

// ResultCode is the user-facing outcome of a command.
type ResultCode int

const (
	// CodeSuccess means the command completed.
	CodeSuccess ResultCode = iota
	// CodeFailure is any failure without a more specific code.
	CodeFailure
	// CodeUsage means the command was invoked incorrectly.
	CodeUsage
	// CodeNotFound means the version is neither installed nor published.
	CodeNotFound
	// CodeNotInstalled means the version is published but not installed.
	CodeNotInstalled
	// CodeCatalogUnavailable means the catalog could not be fetched or parsed.
	CodeCatalogUnavailable
	// CodePersistFailure means activation failed and was rolled back.
	CodePersistFailure
	// CodeConflict means a concurrent activation won or the lock could not be taken.
	CodeConflict
)

// CodeCorruptedState means activation failed and rollback failed too.
const CodeCorruptedState ResultCode = 70

// String returns the code name.
func (c ResultCode) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeFailure:
		return "failure"
	case CodeUsage:
		return "usage"
	case CodeNotFound:
		return "not-found"
	case CodeNotInstalled:
		return "not-installed"
	case CodeCatalogUnavailable:
		return "catalog-unavailable"
	case CodePersistFailure:
		return "persist-failure"
	case CodeConflict:
		return "conflict"
	case CodeCorruptedState:
		return "corrupted-state"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit status for the code.
func (c ResultCode) ExitCode() int {
	return int(c)
}

var codeTable = []struct {
	target error
	code   ResultCode
}{
	{ErrCorruptedState, CodeCorruptedState},
	{ErrPersist, CodePersistFailure},
	{ErrActivationConflict, CodeConflict},
	{ErrLockTimeout, CodeConflict},
	{ErrNotInstalled, CodeNotInstalled},
	{ErrVersionNotFound, CodeNotFound},
	{ErrCatalogUnavailable, CodeCatalogUnavailable},
	{ErrMalformedCatalog, CodeCatalogUnavailable},
	{ErrDuplicateVersion, CodeCatalogUnavailable},
	{ErrNetwork, CodeCatalogUnavailable},
	{ErrCatalogNotConfigured, CodeCatalogUnavailable},
	{ErrUnsupportedCatalogSource, CodeCatalogUnavailable},
	{ErrUsage, CodeUsage},
	{ErrInvalidVersion, CodeUsage},
}

// CodeOf classifies an error chain. ErrCorruptedState dominates every other classification.
func CodeOf(err error) ResultCode {
	if err == nil {
		return CodeSuccess
	}
	for _, row := range codeTable {
		if errors.Is(err, row.target) {
			return row.code
		}
	}
	return CodeFailure
}
