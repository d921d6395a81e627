package resolve

import (
	"context"
	"sort"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Assemble combines the solved version set with translated actions
// into the lock directory and its summary. Local packages are excluded
// by design: they are built from source every time, not locked.
func Assemble(ctx context.Context, rc *Context, solution domain.Solution) (domain.Summary, *domain.LockDir, error) {
	entries := make([]domain.Pkg, 0, len(solution))
	for _, id := range solution {
		if rc.isLocal(id.Name) {
			continue
		}
		entry, err := rc.lockEntry(ctx, id)
		if err != nil {
			return domain.Summary{}, nil, err
		}
		entries = append(entries, entry)
	}

	lock, err := domain.NewLockDir(entries)
	if err != nil {
		return domain.Summary{}, nil, err
	}

	locked := make([]domain.PackageID, len(entries))
	for i, e := range entries {
		locked[i] = e.ID()
	}
	sort.Slice(locked, func(i, j int) bool { return locked[i].Name < locked[j].Name })

	summary := domain.Summary{
		LockDirPath: rc.project.LockDirPath,
		Locked:      locked,
	}
	return summary, lock, nil
}

// lockEntry builds the immutable lock entry for one non-local
// identity: metadata from the repository (or the local copy when a
// local package is depended upon recursively), projected dependency
// names, and translated build/install actions.
func (c *Context) lockEntry(ctx context.Context, id domain.PackageID) (domain.Pkg, error) {
	pkg, err := c.loadResolved(ctx, id)
	if err != nil {
		return domain.Pkg{}, err
	}

	buildAction, err := TranslateCommands(id, pkg.Build)
	if err != nil {
		return domain.Pkg{}, err
	}
	installAction, err := TranslateCommands(id, pkg.Install)
	if err != nil {
		return domain.Pkg{}, err
	}

	return domain.Pkg{
		Name:           id.Name,
		Version:        id.Version,
		Dev:            false,
		Deps:           c.FilterDeps(id, pkg.Depends),
		BuildCommand:   buildAction,
		InstallCommand: installAction,
	}, nil
}

func (c *Context) loadResolved(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	if local, ok := c.project.Locals[id.Name]; ok {
		return local, nil
	}
	pkg, err := c.repo.LoadPackage(ctx, id)
	if err != nil {
		return nil, zerr.With(err, "package", id.String())
	}
	return pkg, nil
}
