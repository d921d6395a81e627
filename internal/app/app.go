// Package app implements the application layer for relock.
package app

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// App orchestrates one lock operation: load the project, resolve, and
// persist the lock directory.
type App struct {
	manifests ports.ManifestLoader
	repos     ports.RepositoryOpener
	solver    ports.Solver
	store     ports.LockStore
	log       ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	repos ports.RepositoryOpener,
	solver ports.Solver,
	store ports.LockStore,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		manifests: manifests,
		repos:     repos,
		solver:    solver,
		store:     store,
		log:       log,
		telemetry: telemetry,
	}
}

// Lock resolves the project in cwd and writes its lock directory.
// Resolution is synchronous and runs to completion or failure; only
// warnings are emitted along the way.
func (a *App) Lock(ctx context.Context, cwd string) error {
	project, err := a.manifests.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load project manifest")
	}

	repository, err := a.repos.Open(project.RepositoryPath)
	if err != nil {
		return zerr.Wrap(err, "failed to open package repository")
	}

	summary, lock, err := a.resolve(ctx, project, repository)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "write "+project.LockDirPath)
	err = a.store.Write(ctx, project.LockDirPath, lock)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to write lock directory")
	}

	a.log.Info(summary.Render())
	return nil
}

func (a *App) resolve(ctx context.Context, project *domain.Project, repository ports.Repository) (domain.Summary, *domain.LockDir, error) {
	ctx, vertex := a.telemetry.Record(ctx, "solve dependencies")
	rc := resolve.NewContext(project, repository, a.log)

	solution, err := resolve.Solve(ctx, rc, a.solver)
	if err != nil {
		vertex.Complete(err)
		return domain.Summary{}, nil, err
	}
	vertex.Log("solved " + project.LockDirPath)

	summary, lock, err := resolve.Assemble(ctx, rc, solution)
	vertex.Complete(err)
	if err != nil {
		return domain.Summary{}, nil, err
	}
	return summary, lock, nil
}

// Close releases telemetry resources.
func (a *App) Close() error {
	return a.telemetry.Close()
}
