package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dist/internal/adapters/detector"
	"go.trai.ch/dist/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.LogFormat
	}{
		{name: "terminal", isTTY: true, expected: detector.FormatPretty},
		{name: "pipe", isTTY: false, expected: detector.FormatJSON},
		{name: "CI=true forces json", isTTY: true, ci: "true", expected: detector.FormatJSON},
		{name: "CI=1 forces json", isTTY: true, ci: "1", expected: detector.FormatJSON},
		{name: "CI=false does not force json", isTTY: true, ci: "false", expected: detector.FormatPretty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment())
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.LogFormat
		userFlag     string
		expected     detector.LogFormat
	}{
		{name: "auto respects detection (pretty)", autoDetected: detector.FormatPretty, userFlag: "auto", expected: detector.FormatPretty},
		{name: "auto respects detection (json)", autoDetected: detector.FormatJSON, userFlag: "auto", expected: detector.FormatJSON},
		{name: "empty flag respects detection", autoDetected: detector.FormatPretty, userFlag: "", expected: detector.FormatPretty},
		{name: "pretty overrides detection", autoDetected: detector.FormatJSON, userFlag: "pretty", expected: detector.FormatPretty},
		{name: "json overrides detection", autoDetected: detector.FormatPretty, userFlag: "json", expected: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.ResolveFormat(tt.autoDetected, tt.userFlag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveFormat_Invalid(t *testing.T) {
	_, err := detector.ResolveFormat(detector.FormatPretty, "xml")
	require.ErrorIs(t, err, domain.ErrUsage)
	assert.Equal(t, domain.CodeUsage, domain.CodeOf(err))
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "auto", detector.FormatAuto.String())
	assert.Equal(t, "pretty", detector.FormatPretty.String())
	assert.Equal(t, "json", detector.FormatJSON.String())
	assert.Equal(t, "invalid", detector.LogFormat(9).String())
}
