package ports

import "go.trai.ch/relock/internal/core/domain"

// ManifestLoader loads the project description from a working
// directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the project manifest from cwd and returns the
	// project bundle.
	Load(cwd string) (*domain.Project, error)
}
