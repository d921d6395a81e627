package domain

import (
	"sort"

	"go.trai.ch/zerr"
)

// SourceInfo describes where a package's sources come from.
type SourceInfo struct {
	URL      string
	Checksum string
}

// EnvBinding is an environment variable a package exports to its
// dependents.
type EnvBinding struct {
	Var   string
	Value string
}

// Pkg is one immutable lock entry: everything needed to fetch and
// build a resolved package without re-solving or re-contacting the
// repository.
type Pkg struct {
	Name    string
	Version string

	// Dev is true iff the package is a local package. Entries that
	// reach a LockDir always carry false; locals are excluded.
	Dev bool

	// Source is absent for repository packages.
	Source       *SourceInfo
	ExtraSources []SourceInfo

	// Deps are the projected dependency names.
	Deps []string

	// BuildCommand and InstallCommand are nil when the package has no
	// such recipe.
	BuildCommand   Action
	InstallCommand Action

	// ExportedEnv is currently always empty.
	ExportedEnv []EnvBinding
}

// ID returns the entry's package identity.
func (p Pkg) ID() PackageID { return PackageID{Name: p.Name, Version: p.Version} }

// LockDir is the immutable, name-keyed record of resolved non-local
// packages. Construct only through NewLockDir.
type LockDir struct {
	packages map[string]Pkg
}

// NewLockDir validates and builds a lock directory from entries.
// A duplicate name is a contract violation: the solver guarantees one
// version per package, so colliding entries must never be silently
// overwritten. Entries flagged Dev are rejected for the same reason.
func NewLockDir(entries []Pkg) (*LockDir, error) {
	packages := make(map[string]Pkg, len(entries))
	for _, e := range entries {
		if e.Dev {
			return nil, zerr.With(ErrLocalPackageInLock, "package", e.Name)
		}
		if _, exists := packages[e.Name]; exists {
			return nil, zerr.With(ErrDuplicateLockEntry, "package", e.Name)
		}
		packages[e.Name] = e
	}
	return &LockDir{packages: packages}, nil
}

// Len returns the number of locked packages.
func (d *LockDir) Len() int { return len(d.packages) }

// Get returns the entry for name.
func (d *LockDir) Get(name string) (Pkg, bool) {
	p, ok := d.packages[name]
	return p, ok
}

// Names returns the locked package names in sorted order.
func (d *LockDir) Names() []string {
	names := make([]string, 0, len(d.packages))
	for name := range d.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the lock entries ordered by name.
func (d *LockDir) Entries() []Pkg {
	entries := make([]Pkg, 0, len(d.packages))
	for _, name := range d.Names() {
		entries = append(entries, d.packages[name])
	}
	return entries
}

// Summary is the user-facing report of one lock operation.
type Summary struct {
	// LockDirPath is the directory the lock was written to.
	LockDirPath string
	// Locked are the externally locked identities, ordered by name.
	Locked []PackageID
}

// Render returns the summary text: a header naming the lock directory
// followed by one line per package, or the empty marker.
func (s Summary) Render() string {
	out := "Solution for " + s.LockDirPath + ":"
	if len(s.Locked) == 0 {
		return out + "\n(no dependencies to lock)"
	}
	for _, id := range s.Locked {
		out += "\n" + id.String()
	}
	return out
}
