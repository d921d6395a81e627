// Package repo implements ports.Repository on a filesystem repository
// laid out as <root>/packages/<name>/<name>.<version>.yaml.
package repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/relock/internal/adapters/metadata"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// loadConcurrency bounds how many metadata files are decoded at once.
const loadConcurrency = 8

// Store is a filesystem-backed package repository.
type Store struct {
	root string
}

// Open validates the repository root and returns a Store.
func Open(root string) (*Store, error) {
	info, err := os.Stat(filepath.Join(root, "packages"))
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrRepositoryOpen, "root", root)
	}
	return &Store{root: root}, nil
}

// LoadAllVersions implements ports.Repository. Versions are loaded
// concurrently; the returned order is unspecified, ordering by
// preference is the caller's concern.
func (s *Store) LoadAllVersions(ctx context.Context, name string) ([]*domain.Package, error) {
	dir := filepath.Join(s.root, "packages", name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read package directory"), "package", name)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
	}

	// Each goroutine writes its own slot, no locking needed.
	packages := make([]*domain.Package, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pkg, err := loadFile(path)
			if err != nil {
				return err
			}
			packages[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return packages, nil
}

// LoadPackage implements ports.Repository.
func (s *Store) LoadPackage(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.root, "packages", id.Name, id.String()+".yaml")
	if _, err := os.Stat(path); err != nil {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", id.String())
	}
	return loadFile(path)
}

func loadFile(path string) (*domain.Package, error) {
	//nolint:gosec // path is derived from the repository root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package metadata"), "file", path)
	}

	var dto metadata.PackageDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		// Keep the sentinel in the chain so the solver adapter can
		// classify this as a parse diagnostic.
		parseErr := zerr.With(domain.ErrMetadataParse, "file", path)
		return nil, zerr.With(parseErr, "cause", err.Error())
	}

	pkg, err := dto.ToDomain()
	if err != nil {
		return nil, zerr.With(err, "file", path)
	}
	return pkg, nil
}

// Opener implements ports.RepositoryOpener.
type Opener struct{}

// Open implements ports.RepositoryOpener.
func (Opener) Open(path string) (ports.Repository, error) {
	return Open(path)
}
