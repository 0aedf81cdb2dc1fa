package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dist/internal/adapters/logger"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("activated 1.1.0") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("1.0.0 is published in several channels; using stable") },
			goldenName: "warn_basic",
		},
		{
			name:       "plain error",
			log:        func(l *logger.Logger) { l.Error(errors.New("boom")) },
			goldenName: "error_plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Chains(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name: "zerr chain with metadata",
			err: func() error {
				inner := zerr.With(zerr.New("disk full"), "path", "/home/u/.dist/active.json")
				outer := zerr.Wrap(inner, "failed to write active pointer")
				return zerr.With(outer, "version", "1.1.0")
			}(),
			goldenName: "error_chain_metadata",
		},
		{
			name: "sentinel joined with cause",
			err: errors.Join(
				domain.ErrPersist,
				zerr.With(zerr.Wrap(errors.New("read-only file system"), "activation rolled back"), "version", "2.0.0"),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("connection refused"), "catalog fetch failed"), "url", "https://example.org"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, "catalog fetch failed")
	assert.NotContains(t, out, "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("pretty")
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Warn("json")
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Warn("pretty again")
	again := buf.String()

	assert.Equal(t, "! pretty\n", pretty)
	assert.Contains(t, jsonOut, `"msg":"json"`)
	assert.Equal(t, "! pretty again\n", again)
}

func TestLogger_SetOutputNil(t *testing.T) {
	require.NotPanics(t, func() {
		logger.New().SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	done := make(chan struct{}, 5)
	for _, fn := range []func(){
		func() { lg.Info("info") },
		func() { lg.Warn("warn") },
		func() { lg.Error(errors.New("error")) },
		func() { lg.SetJSON(true) },
		func() { lg.SetOutput(&bytes.Buffer{}) },
	} {
		go func() {
			fn()
			done <- struct{}{}
		}()
	}

	for range 5 {
		<-done
	}
}
