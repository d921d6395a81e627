// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// Repository is a read-only source of package metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// LoadAllVersions returns every known version of the named
	// package, in no particular order. If the repository knows
	// nothing about the name it returns domain.ErrPackageNotFound.
	LoadAllVersions(ctx context.Context, name string) ([]*domain.Package, error)

	// LoadPackage returns the metadata of one concrete version.
	LoadPackage(ctx context.Context, id domain.PackageID) (*domain.Package, error)
}

// RepositoryOpener opens the repository rooted at a path declared by
// the project manifest.
type RepositoryOpener interface {
	Open(path string) (Repository, error)
}
