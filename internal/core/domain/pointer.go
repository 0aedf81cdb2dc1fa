package domain

import "slices"

// ActivePointer records which installed version is current.
// The zero value is an unset pointer.
type ActivePointer struct {
	version string
	set     bool
}

// NewActivePointer returns a pointer set to version. An empty version yields an unset pointer.
func NewActivePointer(version string) ActivePointer {
	if version == "" {
		return ActivePointer{}
	}
	return ActivePointer{version: version, set: true}
}

// IsSet reports whether a version is active.
func (p ActivePointer) IsSet() bool {
	return p.set
}

// Version returns the active version, or "" when unset.
func (p ActivePointer) Version() string {
	return p.version
}

// Matches reports whether the pointer is set and equals version.
func (p ActivePointer) Matches(version string) bool {
	return p.set && p.version == version
}

// VersionSet is the set of installed versions, derived fresh from the store on each query.
type VersionSet struct {
	versions []string
	index    map[string]struct{}
}

// NewVersionSet builds a set from the given versions, dropping duplicates and keeping first-seen order.
func NewVersionSet(versions []string) VersionSet {
	set := VersionSet{index: make(map[string]struct{}, len(versions))}
	for _, v := range versions {
		if v == "" {
			continue
		}
		if _, ok := set.index[v]; ok {
			continue
		}
		set.index[v] = struct{}{}
		set.versions = append(set.versions, v)
	}
	return set
}

// Contains reports whether version is installed.
func (s VersionSet) Contains(version string) bool {
	_, ok := s.index[version]
	return ok
}

// Len returns the number of installed versions.
func (s VersionSet) Len() int {
	return len(s.versions)
}

// Versions returns the installed versions sorted lexically.
func (s VersionSet) Versions() []string {
	out := slices.Clone(s.versions)
	slices.Sort(out)
	return out
}
