package config

// Configfile is the structure of <home>/config.yaml.
type Configfile struct {
	Catalog CatalogSection `yaml:"catalog"`
	Lock    LockSection    `yaml:"lock"`
}

// CatalogSection configures where the catalog manifest comes from.
type CatalogSection struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// LockSection configures the activation lock.
type LockSection struct {
	Timeout string `yaml:"timeout"`
}
