// Package manifest decodes catalog manifests into domain catalogs.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.CatalogParser = (*Parser)(nil)

// Parser implements ports.CatalogParser for YAML and JSON manifests.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements ports.CatalogParser.
func (p *Parser) Parse(raw []byte) (*domain.Catalog, error) {
	return ParseCatalog(raw)
}

// ParseCatalog decodes raw and validates the result. It returns either a catalog
// or an error wrapping domain.ErrMalformedCatalog or domain.ErrDuplicateVersion.
// Unknown keys are rejected.
func ParseCatalog(raw []byte) (*domain.Catalog, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.Wrap(domain.ErrMalformedCatalog, "manifest is empty")
		}
		return nil, errors.Join(domain.ErrMalformedCatalog, zerr.Wrap(err, "failed to decode manifest"))
	}

	if doc.Channels == nil {
		return nil, zerr.Wrap(domain.ErrMalformedCatalog, "manifest has no channels key")
	}

	channels := make([]domain.Channel, 0, len(*doc.Channels))
	for _, entry := range *doc.Channels {
		dists := make([]domain.Distribution, 0, len(entry.Distributions))
		for _, d := range entry.Distributions {
			dists = append(dists, domain.Distribution{Version: d.Version, DownloadURL: d.URL})
		}
		channels = append(channels, domain.NewChannel(entry.Name, dists))
	}

	return domain.NewCatalog(channels, Digest(raw))
}

// Digest returns the hex xxhash64 fingerprint of a raw manifest.
func Digest(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}
