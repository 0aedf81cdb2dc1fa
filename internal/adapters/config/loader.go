// Package config loads dist settings from the home directory and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding config.yaml.
const (
	EnvCatalogURL   = "DIST_CATALOG_URL"
	EnvFetchTimeout = "DIST_FETCH_TIMEOUT"
	EnvLockTimeout  = "DIST_LOCK_TIMEOUT"
)

// Loader implements ports.ConfigLoader using a YAML file plus environment overrides.
type Loader struct {
	Logger ports.Logger
	Getenv func(string) string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// ResolveHome returns $DIST_HOME, or ~/.dist when it is unset.
func ResolveHome(getenv func(string) string, userHomeDir func() (string, error)) (string, error) {
	if home := getenv(domain.HomeEnvVar); home != "" {
		return filepath.Abs(home)
	}
	userHome, err := userHomeDir()
	if err != nil {
		return "", errors.Join(domain.ErrHomeNotResolved, err)
	}
	return filepath.Join(userHome, domain.DefaultHomeDirName), nil
}

// Load reads <home>/config.yaml and applies the environment on top.
// A missing file yields the defaults.
func (l *Loader) Load(home string) (domain.Settings, error) {
	settings := domain.DefaultSettings(home)
	path := settings.Layout.ConfigFile()

	file, err := readConfigfile(path)
	if err != nil {
		return domain.Settings{}, err
	}

	settings.CatalogURL = file.Catalog.URL
	if settings.FetchTimeout, err = l.duration(file.Catalog.Timeout, settings.FetchTimeout, "catalog.timeout"); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	if settings.LockTimeout, err = l.duration(file.Lock.Timeout, settings.LockTimeout, "lock.timeout"); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvCatalogURL); v != "" {
		settings.CatalogURL = v
	}
	if settings.FetchTimeout, err = l.duration(getenv(EnvFetchTimeout), settings.FetchTimeout, EnvFetchTimeout); err != nil {
		return domain.Settings{}, err
	}
	if settings.LockTimeout, err = l.duration(getenv(EnvLockTimeout), settings.LockTimeout, EnvLockTimeout); err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}

func readConfigfile(path string) (Configfile, error) {
	var file Configfile

	raw, err := os.ReadFile(path) //nolint:gosec // path is derived from the dist home
	if errors.Is(err, fs.ErrNotExist) {
		return file, nil
	}
	if err != nil {
		return file, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot read config"), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return file, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "invalid config"), "path", path)
	}
	return file, nil
}

// duration parses raw, keeping fallback when raw is empty.
// A non-positive value is ignored with a warning.
func (l *Loader) duration(raw string, fallback time.Duration, field string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "invalid duration"), "field", field)
	}
	if d <= 0 {
		if l.Logger != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring non-positive %s %q, using %s", field, raw, fallback))
		}
		return fallback, nil
	}
	return d, nil
}
