package domain

import "path/filepath"

const (
	// HomeEnvVar overrides the dist home directory.
	HomeEnvVar = "DIST_HOME"

	// DefaultHomeDirName is the home directory name under the user's home.
	DefaultHomeDirName = ".dist"

	// DistributionsDirName is the directory holding one subdirectory per installed version.
	DistributionsDirName = "distributions"

	// CurrentLinkName is the link pointing at the active distribution.
	CurrentLinkName = "current"

	// ActiveFileName is the file holding the active pointer.
	ActiveFileName = "active.json"

	// LockFileName is the file used for the cross-process activation lock.
	LockFileName = "dist.lock"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves the well-known paths under a dist home directory.
type Layout struct {
	Home string
}

// NewLayout returns the layout rooted at home.
func NewLayout(home string) Layout {
	return Layout{Home: home}
}

// DistributionsDir returns the installed distributions directory.
func (l Layout) DistributionsDir() string {
	return filepath.Join(l.Home, DistributionsDirName)
}

// DistributionDir returns the directory of a single installed version.
func (l Layout) DistributionDir(version string) string {
	return filepath.Join(l.Home, DistributionsDirName, version)
}

// CurrentLink returns the path of the current-version link.
func (l Layout) CurrentLink() string {
	return filepath.Join(l.Home, CurrentLinkName)
}

// ActiveFile returns the path of the active pointer file.
func (l Layout) ActiveFile() string {
	return filepath.Join(l.Home, ActiveFileName)
}

// LockFile returns the path of the activation lock file.
func (l Layout) LockFile() string {
	return filepath.Join(l.Home, LockFileName)
}

// ConfigFile returns the path of the configuration file.
func (l Layout) ConfigFile() string {
	return filepath.Join(l.Home, ConfigFileName)
}
