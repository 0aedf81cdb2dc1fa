package domain_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestActivePointer(t *testing.T) {
	var unset domain.ActivePointer
	assert.False(t, unset.IsSet())
	assert.False(t, unset.Matches(""))
	assert.Empty(t, unset.Version())

	empty := domain.NewActivePointer("")
	assert.False(t, empty.IsSet())
	assert.Equal(t, unset, empty)

	set := domain.NewActivePointer("1.0.0")
	assert.True(t, set.IsSet())
	assert.True(t, set.Matches("1.0.0"))
	assert.False(t, set.Matches("1.0"))
	assert.Equal(t, "1.0.0", set.Version())
}

func TestVersionSet(t *testing.T) {
	set := domain.NewVersionSet([]string{"2.0.0", "1.0.0", "", "2.0.0"})

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("1.0.0"))
	assert.False(t, set.Contains(""))
	assert.False(t, set.Contains("3.0.0"))
	assert.Equal(t, []string{"1.0.0", "2.0.0"}, set.Versions())

	var zero domain.VersionSet
	assert.False(t, zero.Contains("1.0.0"))
	assert.Equal(t, 0, zero.Len())
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "already-active", domain.ClassificationAlreadyActive.String())
	assert.Equal(t, "installed", domain.ClassificationInstalledInactive.String())
	assert.Equal(t, "catalog-only", domain.ClassificationCatalogOnly.String())
	assert.Equal(t, "unknown", domain.ClassificationUnknown.String())
	assert.Equal(t, "invalid", domain.Classification(42).String())
}

func TestActivationState_Transitions(t *testing.T) {
	allowed := map[domain.ActivationState][]domain.ActivationState{
		domain.StateStart:       {domain.StateValidating},
		domain.StateValidating:  {domain.StateLinking, domain.StateDone, domain.StateError},
		domain.StateLinking:     {domain.StatePersisting, domain.StateRollingBack},
		domain.StatePersisting:  {domain.StateDone, domain.StateRollingBack},
		domain.StateRollingBack: {domain.StateError},
		domain.StateDone:        nil,
		domain.StateError:       nil,
	}

	for from, targets := range allowed {
		for to := domain.StateStart; to <= domain.StateError; to++ {
			want := false
			for _, target := range targets {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}

	assert.Equal(t, "rolling-back", domain.StateRollingBack.String())
	assert.Equal(t, "invalid", domain.ActivationState(-1).String())
}

func TestActivationResult_Final(t *testing.T) {
	assert.Equal(t, domain.StateStart, domain.ActivationResult{}.Final())
	res := domain.ActivationResult{States: []domain.ActivationState{domain.StateStart, domain.StateValidating, domain.StateDone}}
	assert.Equal(t, domain.StateDone, res.Final())
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ResultCode
	}{
		{"nil", nil, domain.CodeSuccess},
		{"plain", errors.New("boom"), domain.CodeFailure},
		{"usage", domain.ErrUsage, domain.CodeUsage},
		{"invalid version", zerr.Wrap(domain.ErrInvalidVersion, "empty"), domain.CodeUsage},
		{"not found", domain.ErrVersionNotFound, domain.CodeNotFound},
		{"not installed", zerr.With(zerr.Wrap(domain.ErrNotInstalled, "check"), "version", "1.0.0"), domain.CodeNotInstalled},
		{"catalog unavailable", errors.Join(domain.ErrCatalogUnavailable, domain.ErrNetwork), domain.CodeCatalogUnavailable},
		{"malformed", domain.ErrMalformedCatalog, domain.CodeCatalogUnavailable},
		{"persist", fmt.Errorf("wrap: %w", domain.ErrPersist), domain.CodePersistFailure},
		{"conflict", domain.ErrActivationConflict, domain.CodeConflict},
		{"lock timeout", domain.ErrLockTimeout, domain.CodeConflict},
		{"corrupted dominates", errors.Join(domain.ErrPersist, domain.ErrCorruptedState, domain.ErrNotInstalled), domain.CodeCorruptedState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CodeOf(tt.err))
		})
	}

	assert.Equal(t, 70, domain.CodeCorruptedState.ExitCode())
	assert.Equal(t, "corrupted-state", domain.CodeCorruptedState.String())
}

func TestLayoutPaths(t *testing.T) {
	layout := domain.NewLayout(filepath.Join("home", ".dist"))

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"DistributionsDir", layout.DistributionsDir(), filepath.Join("home", ".dist", "distributions")},
		{"DistributionDir", layout.DistributionDir("1.0.0"), filepath.Join("home", ".dist", "distributions", "1.0.0")},
		{"CurrentLink", layout.CurrentLink(), filepath.Join("home", ".dist", "current")},
		{"ActiveFile", layout.ActiveFile(), filepath.Join("home", ".dist", "active.json")},
		{"LockFile", layout.LockFile(), filepath.Join("home", ".dist", "dist.lock")},
		{"ConfigFile", layout.ConfigFile(), filepath.Join("home", ".dist", "config.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings("/tmp/dist")
	assert.Equal(t, "/tmp/dist", s.Layout.Home)
	assert.Equal(t, domain.DefaultFetchTimeout, s.FetchTimeout)
	assert.Equal(t, domain.DefaultLockTimeout, s.LockTimeout)
	assert.Empty(t, s.CatalogURL)
}
