// Package manifest provides the project manifest loader for relock.
package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/adapters/metadata"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the conventional project manifest name.
const DefaultFilename = "relock.yaml"

// defaultLockDir is used when the manifest does not name one.
const defaultLockDir = "relock.lock"

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a loader for the conventional manifest name.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// projectFile is the structure of relock.yaml.
type projectFile struct {
	Repository string                `yaml:"repository"`
	LockDir    string                `yaml:"lockdir"`
	Preference string                `yaml:"preference"`
	Env        map[string]*envVal    `yaml:"env"`
	Flags      []string              `yaml:"flags"`
	Packages   []metadata.PackageDTO `yaml:"packages"`
}

// envVal decodes an environment binding: a string, a bool, or null for
// an explicitly unset variable.
type envVal struct {
	value domain.Value
}

func (v *envVal) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		v.value = domain.Unset()
		return nil
	}
	var b bool
	if err := node.Decode(&b); err == nil && node.Tag == "!!bool" {
		v.value = domain.Bool(b)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v.value = domain.String(s)
	return nil
}

// Load reads the project manifest from cwd and returns the project
// bundle for one lock operation.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path := filepath.Join(cwd, l.Filename)
	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.ErrManifestRead, "path", path)
	}

	var file projectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		manifestErr := zerr.With(domain.ErrManifestParse, "path", path)
		return nil, zerr.With(manifestErr, "cause", err.Error())
	}

	preference, err := domain.ParseVersionPreference(file.Preference)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	locals := make(map[string]*domain.Package, len(file.Packages))
	for i := range file.Packages {
		pkg, err := file.Packages[i].ToDomain()
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if _, exists := locals[pkg.Name]; exists {
			dupErr := zerr.With(domain.ErrManifestParse, "path", path)
			return nil, zerr.With(dupErr, "duplicate_package", pkg.Name)
		}
		locals[pkg.Name] = pkg
	}

	vars := make(map[string]domain.Value, len(file.Env))
	for name, v := range file.Env {
		vars[name] = v.value
	}

	lockDir := file.LockDir
	if lockDir == "" {
		lockDir = defaultLockDir
	}

	return &domain.Project{
		Locals:         locals,
		Env:            domain.NewSolverEnv(vars, file.Flags),
		Preference:     preference,
		RepositoryPath: resolvePath(cwd, file.Repository),
		LockDirPath:    resolvePath(cwd, lockDir),
	}, nil
}

func resolvePath(cwd, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}
