package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Distribution is one published, installable version.
// DownloadURL is opaque to the engine and only carried for the fetch collaborator.
type Distribution struct {
	Version     string
	DownloadURL string
}

// Channel is a named release track. Distributions keep the manifest's publication order.
type Channel struct {
	name          string
	distributions []Distribution
}

// NewChannel creates a channel from its name and distributions in publication order.
func NewChannel(name string, distributions []Distribution) Channel {
	return Channel{
		name:          name,
		distributions: slices.Clone(distributions),
	}
}

// Name returns the channel name.
func (c Channel) Name() string {
	return c.name
}

// Distributions returns a copy of the channel's distributions in publication order.
func (c Channel) Distributions() []Distribution {
	return slices.Clone(c.distributions)
}

// Len returns the number of distributions in the channel.
func (c Channel) Len() int {
	return len(c.distributions)
}

// Catalog is the immutable set of channels known from one manifest fetch.
type Catalog struct {
	channels []Channel
	digest   string
}

// Match is the result of a catalog lookup.
type Match struct {
	// Channel is the first channel, in catalog order, that lists the version.
	Channel string
	// Distribution is the matching distribution from Channel.
	Distribution Distribution
	// AlsoIn lists the other channels publishing the same version, in catalog order.
	AlsoIn []string
}

// Ambiguous reports whether the version is published by more than one channel.
func (m Match) Ambiguous() bool {
	return len(m.AlsoIn) > 0
}

// NewCatalog validates the channels and builds a Catalog.
// Channel names must be non-empty and unique, every distribution needs a version,
// and a channel may not list the same version twice.
func NewCatalog(channels []Channel, digest string) (*Catalog, error) {
	seenChannels := make(map[string]struct{}, len(channels))

	for i, ch := range channels {
		if ch.name == "" {
			return nil, zerr.With(zerr.Wrap(ErrMalformedCatalog, "channel has no name"), "channel_index", i)
		}
		if _, dup := seenChannels[ch.name]; dup {
			return nil, zerr.With(zerr.Wrap(ErrMalformedCatalog, "channel declared twice"), "channel", ch.name)
		}
		seenChannels[ch.name] = struct{}{}

		seenVersions := make(map[string]struct{}, len(ch.distributions))
		for j, dist := range ch.distributions {
			if dist.Version == "" {
				err := zerr.With(zerr.Wrap(ErrMalformedCatalog, "distribution has no version"), "channel", ch.name)
				return nil, zerr.With(err, "distribution_index", j)
			}
			if _, dup := seenVersions[dist.Version]; dup {
				err := zerr.With(zerr.Wrap(ErrDuplicateVersion, "version listed twice"), "channel", ch.name)
				return nil, zerr.With(err, "version", dist.Version)
			}
			seenVersions[dist.Version] = struct{}{}
		}
	}

	cloned := make([]Channel, len(channels))
	for i, ch := range channels {
		cloned[i] = NewChannel(ch.name, ch.distributions)
	}

	return &Catalog{channels: cloned, digest: digest}, nil
}

// Channels returns the catalog channels in manifest order.
func (c *Catalog) Channels() []Channel {
	return slices.Clone(c.channels)
}

// Digest returns the fingerprint of the manifest the catalog was parsed from.
func (c *Catalog) Digest() string {
	return c.digest
}

// FindVersion looks up a version by exact string equality across all channels.
// The first match in channel-then-distribution order wins; other channels that
// publish the same version are reported in Match.AlsoIn.
func (c *Catalog) FindVersion(version string) (Match, bool) {
	var (
		match Match
		found bool
	)

	for _, ch := range c.channels {
		for _, dist := range ch.distributions {
			if dist.Version != version {
				continue
			}
			if !found {
				match = Match{Channel: ch.name, Distribution: dist}
				found = true
			} else {
				match.AlsoIn = append(match.AlsoIn, ch.name)
			}
			break
		}
	}

	return match, found
}

// Versions returns every version in the catalog in channel-then-distribution order,
// keeping only the first occurrence of versions published by several channels.
func (c *Catalog) Versions() []string {
	seen := make(map[string]struct{})
	var versions []string
	for _, ch := range c.channels {
		for _, dist := range ch.distributions {
			if _, ok := seen[dist.Version]; ok {
				continue
			}
			seen[dist.Version] = struct{}{}
			versions = append(versions, dist.Version)
		}
	}
	return versions
}
