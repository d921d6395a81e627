package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/relock/internal/adapters/manifest"
	"go.trai.ch/relock/internal/core/domain"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, manifest.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestLoad_FullManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
repository: ./repo
lockdir: out.lock
preference: oldest
env:
  os: linux
  arch: null
  debug: true
flags:
  - with-test
packages:
  - name: myapp
    version: "0.1"
    depends:
      - name: zlib
`)

	project, err := manifest.NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Preference != domain.PreferOldest {
		t.Errorf("expected oldest preference, got %v", project.Preference)
	}
	if project.RepositoryPath != filepath.Join(dir, "repo") {
		t.Errorf("expected repository path under cwd, got %q", project.RepositoryPath)
	}
	if project.LockDirPath != filepath.Join(dir, "out.lock") {
		t.Errorf("expected lock path under cwd, got %q", project.LockDirPath)
	}

	if !project.IsLocal("myapp") {
		t.Error("expected myapp to be local")
	}
	if project.Locals["myapp"].Version != "0.1" {
		t.Errorf("unexpected local version %q", project.Locals["myapp"].Version)
	}

	if v, ok := project.Env.Lookup("os"); !ok || v.Str != "linux" {
		t.Errorf("expected os=linux, got %v %v", v, ok)
	}
	if v, ok := project.Env.Lookup("debug"); !ok || v.Kind != domain.ValueBool || !v.Bool {
		t.Errorf("expected debug=true, got %v %v", v, ok)
	}
	if !project.Env.UnsetSystem("arch") {
		t.Error("expected arch to be explicitly unset")
	}
	if v, ok := project.Env.Lookup("with-test"); !ok || !v.Bool {
		t.Errorf("expected with-test flag enabled, got %v %v", v, ok)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `repository: /srv/repo`)

	project, err := manifest.NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Preference != domain.PreferNewest {
		t.Errorf("expected newest preference by default, got %v", project.Preference)
	}
	if project.RepositoryPath != "/srv/repo" {
		t.Errorf("expected absolute repository path untouched, got %q", project.RepositoryPath)
	}
	if project.LockDirPath != filepath.Join(dir, "relock.lock") {
		t.Errorf("expected default lock directory, got %q", project.LockDirPath)
	}
	if len(project.Locals) != 0 {
		t.Errorf("expected no local packages, got %v", project.LocalNames())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.NewLoader().Load(t.TempDir())
	if !errors.Is(err, domain.ErrManifestRead) {
		t.Fatalf("expected ErrManifestRead, got %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "repository: [unclosed")

	_, err := manifest.NewLoader().Load(dir)
	if !errors.Is(err, domain.ErrManifestParse) {
		t.Fatalf("expected ErrManifestParse, got %v", err)
	}
}

func TestLoad_DuplicateLocalPackage(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
repository: ./repo
packages:
  - name: myapp
  - name: myapp
`)

	_, err := manifest.NewLoader().Load(dir)
	if !errors.Is(err, domain.ErrManifestParse) {
		t.Fatalf("expected ErrManifestParse for duplicate package, got %v", err)
	}
}

func TestLoad_InvalidPreference(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
repository: ./repo
preference: shiniest
`)

	_, err := manifest.NewLoader().Load(dir)
	if !errors.Is(err, domain.ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
}
