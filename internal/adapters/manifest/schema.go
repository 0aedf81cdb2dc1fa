package manifest

// Document is the root of a catalog manifest.
type Document struct {
	Channels *[]ChannelEntry `yaml:"channels"`
}

// ChannelEntry is one release channel in a manifest.
type ChannelEntry struct {
	Name          string              `yaml:"name"`
	Distributions []DistributionEntry `yaml:"distributions"`
}

// DistributionEntry is one published version in a manifest.
type DistributionEntry struct {
	Version string `yaml:"version"`
	URL     string `yaml:"url"`
}
