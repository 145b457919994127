package ports

import "go.trai.ch/relock/internal/core/domain"

// ManifestLoader defines the interface for loading the dependency manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given path and returns the
	// immutable domain aggregate.
	Load(path string) (*domain.Manifest, error)
}
