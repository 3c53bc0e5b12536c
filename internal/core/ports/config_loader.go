package ports

import "go.trai.ch/rjs/internal/core/domain"

// ConfigLoader defines the interface for loading the package manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at path and returns the declared packages.
	Load(path string) (*domain.Manifest, error)
}
