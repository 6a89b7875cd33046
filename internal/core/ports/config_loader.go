package ports

import "go.trai.ch/lineage/internal/core/domain"

// ConfigLoader defines the interface for loading the resolution configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working directory.
	// A missing config file is not an error; defaults are returned instead.
	Load(cwd string) (*domain.Config, error)
}
