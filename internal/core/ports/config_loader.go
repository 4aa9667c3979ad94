package ports

import "go.trai.ch/bindle/internal/core/domain"

// ConfigLoader defines the interface for loading the bundler configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and reads the configuration starting from the given
	// working directory.
	Load(cwd string) (*domain.Config, error)
}
