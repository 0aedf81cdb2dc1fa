package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dist/internal/adapters/manifest"
	"go.trai.ch/dist/internal/core/domain"
)

func TestParseCatalog_YAML(t *testing.T) {
	raw := []byte(`
channels:
  - name: stable
    distributions:
      - version: 2.0.0
        url: https://example.org/2.0.0.zip
      - version: 1.0.0
        url: https://example.org/1.0.0.zip
  - name: preview
    distributions:
      - version: 3.0.0-rc1
        url: https://example.org/3.0.0-rc1.zip
      - version: 2.0.0
        url: https://example.org/preview/2.0.0.zip
`)

	catalog, err := manifest.ParseCatalog(raw)
	require.NoError(t, err)

	channels := catalog.Channels()
	require.Len(t, channels, 2)
	assert.Equal(t, "stable", channels[0].Name())
	assert.Equal(t, []domain.Distribution{
		{Version: "2.0.0", DownloadURL: "https://example.org/2.0.0.zip"},
		{Version: "1.0.0", DownloadURL: "https://example.org/1.0.0.zip"},
	}, channels[0].Distributions(), "publication order is kept")

	match, ok := catalog.FindVersion("2.0.0")
	require.True(t, ok)
	assert.Equal(t, "stable", match.Channel)
	assert.Equal(t, []string{"preview"}, match.AlsoIn)

	assert.Equal(t, manifest.Digest(raw), catalog.Digest())
	assert.Len(t, catalog.Digest(), 16)
}

func TestParseCatalog_JSON(t *testing.T) {
	raw := []byte(`{"channels":[{"name":"stable","distributions":[{"version":"1.0.0","url":"u"}]}]}`)

	catalog, err := manifest.ParseCatalog(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0.0"}, catalog.Versions())
}

func TestParseCatalog_EmptyChannels(t *testing.T) {
	catalog, err := manifest.ParseCatalog([]byte("channels: []\n"))
	require.NoError(t, err)
	assert.Empty(t, catalog.Channels())
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty document", raw: "", wantErr: domain.ErrMalformedCatalog},
		{name: "undecodable", raw: "channels: [", wantErr: domain.ErrMalformedCatalog},
		{name: "wrong shape", raw: "channels: stable\n", wantErr: domain.ErrMalformedCatalog},
		{name: "missing channels", raw: "releases: []\n", wantErr: domain.ErrMalformedCatalog},
		{name: "no channels key", raw: "{}\n", wantErr: domain.ErrMalformedCatalog},
		{
			name:    "channel without name",
			raw:     "channels:\n  - distributions: []\n",
			wantErr: domain.ErrMalformedCatalog,
		},
		{
			name:    "duplicate channel",
			raw:     "channels:\n  - name: a\n  - name: a\n",
			wantErr: domain.ErrMalformedCatalog,
		},
		{
			name:    "distribution without version",
			raw:     "channels:\n  - name: a\n    distributions:\n      - url: u\n",
			wantErr: domain.ErrMalformedCatalog,
		},
		{
			name:    "duplicate version",
			raw:     "channels:\n  - name: a\n    distributions:\n      - version: 1.0.0\n      - version: 1.0.0\n",
			wantErr: domain.ErrDuplicateVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := manifest.ParseCatalog([]byte(tt.raw))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, catalog)
		})
	}
}

func TestDigest_Stable(t *testing.T) {
	assert.Equal(t, manifest.Digest([]byte("a")), manifest.Digest([]byte("a")))
	assert.NotEqual(t, manifest.Digest([]byte("a")), manifest.Digest([]byte("b")))
}
