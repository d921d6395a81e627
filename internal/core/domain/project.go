package domain

// Project bundles everything a lock operation needs from the project
// manifest: the local packages, the target environment, the version
// preference, and where the repository and lock directory live.
type Project struct {
	// Locals maps package name to its manifest metadata. Local
	// packages are never looked up in the repository and never appear
	// in the lock directory.
	Locals map[string]*Package

	// Env is the target environment the resolution runs against.
	Env *SolverEnv

	// Preference is the version ordering direction.
	Preference VersionPreference

	// RepositoryPath is the root of the package repository.
	RepositoryPath string

	// LockDirPath is where the lock directory is written.
	LockDirPath string
}

// IsLocal reports whether name is one of the project's own packages.
func (p *Project) IsLocal(name string) bool {
	_, ok := p.Locals[name]
	return ok
}

// LocalNames returns the local package names, unsorted.
func (p *Project) LocalNames() []string {
	names := make([]string, 0, len(p.Locals))
	for name := range p.Locals {
		names = append(names, name)
	}
	return names
}
