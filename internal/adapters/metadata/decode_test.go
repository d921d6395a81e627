package metadata_test

import (
	"errors"
	"testing"

	"go.trai.ch/relock/internal/adapters/metadata"
	"go.trai.ch/relock/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, src string) *domain.Package {
	t.Helper()
	var dto metadata.PackageDTO
	if err := yaml.Unmarshal([]byte(src), &dto); err != nil {
		t.Fatalf("failed to unmarshal fixture: %v", err)
	}
	pkg, err := dto.ToDomain()
	if err != nil {
		t.Fatalf("unexpected conversion error: %v", err)
	}
	return pkg
}

func TestToDomain_FullPackage(t *testing.T) {
	pkg := decode(t, `
name: libfoo
version: "2.0"
available:
  op: "="
  lhs: {var: os}
  rhs: {str: linux}
depends:
  - name: zlib
    constraint: ">= 1.2"
  - name: testdep
    filter: {var: with-test}
build:
  - [{lit: make}, {ident: jobs}]
install:
  - [{lit: make}, {lit: install}]
`)

	if pkg.Name != "libfoo" || pkg.Version != "2.0" {
		t.Errorf("unexpected identity %s", pkg.ID())
	}

	op, ok := pkg.Available.(domain.FilterOp)
	if !ok || op.Op != domain.OpEq {
		t.Fatalf("expected equality filter, got %v", pkg.Available)
	}
	if v, ok := op.Lhs.(domain.FilterVar); !ok || v.Name != "os" {
		t.Errorf("expected os variable, got %v", op.Lhs)
	}

	var atoms []domain.Dependency
	pkg.Depends.Atoms(func(dep domain.Dependency) bool {
		atoms = append(atoms, dep)
		return true
	})
	if len(atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %v", atoms)
	}
	if atoms[0].Name != "zlib" || atoms[0].Constraint != ">= 1.2" {
		t.Errorf("unexpected first atom %+v", atoms[0])
	}
	if atoms[1].Guard == nil {
		t.Error("expected guard on test dependency")
	}

	if len(pkg.Build) != 1 || len(pkg.Build[0]) != 2 {
		t.Fatalf("unexpected build commands %v", pkg.Build)
	}
	if pkg.Build[0][1].Kind != domain.ArgIdent || pkg.Build[0][1].Value != "jobs" {
		t.Errorf("expected jobs identifier, got %+v", pkg.Build[0][1])
	}
}

func TestToDomain_FormulaGroups(t *testing.T) {
	pkg := decode(t, `
name: libfoo
depends:
  - any:
      - name: libssl
      - name: libtls
  - name: zlib
`)

	if len(pkg.Depends.All) != 2 {
		t.Fatalf("expected top-level conjunction of 2, got %+v", pkg.Depends)
	}
	if len(pkg.Depends.All[0].Any) != 2 {
		t.Errorf("expected disjunction of 2, got %+v", pkg.Depends.All[0])
	}
}

func TestToDomain_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "missing package name",
			src:  `version: "1.0"`,
		},
		{
			name: "empty filter node",
			src: `
name: x
available: {}
`,
		},
		{
			name: "bad comparison operator",
			src: `
name: x
available:
  op: "~="
  lhs: {str: a}
  rhs: {str: b}
`,
		},
		{
			name: "comparison missing operand",
			src: `
name: x
available:
  op: "="
  lhs: {str: a}
`,
		},
		{
			name: "formula node with name and group",
			src: `
name: x
depends:
  - name: y
    all:
      - name: z
`,
		},
		{
			name: "command argument neither lit nor ident",
			src: `
name: x
build:
  - [{}]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dto metadata.PackageDTO
			if err := yaml.Unmarshal([]byte(tt.src), &dto); err != nil {
				t.Fatalf("failed to unmarshal fixture: %v", err)
			}
			_, err := dto.ToDomain()
			if !errors.Is(err, domain.ErrMetadataParse) {
				t.Errorf("expected ErrMetadataParse, got %v", err)
			}
		})
	}
}

func TestToDomain_SingleDependencyIsNotWrapped(t *testing.T) {
	pkg := decode(t, `
name: x
depends:
  - name: zlib
`)
	if pkg.Depends.Atom == nil || pkg.Depends.Atom.Name != "zlib" {
		t.Errorf("expected single atom without conjunction wrapper, got %+v", pkg.Depends)
	}
}
