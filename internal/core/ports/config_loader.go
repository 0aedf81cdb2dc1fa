package ports

import "go.trai.ch/dist/internal/core/domain"

// ConfigLoader defines the interface for loading the dist configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration under home, applying environment overrides.
	Load(home string) (domain.Settings, error)
}
