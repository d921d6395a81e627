package resolve_test

import (
	"testing"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.trai.ch/relock/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

func atom(name string, guard domain.Filter) domain.Formula {
	return domain.Formula{Atom: &domain.Dependency{Name: name, Guard: guard}}
}

func TestFilterDeps_AxisDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)
	rc := resolve.NewContext(newProject(nil, nil), repo, log)

	formula := domain.Formula{All: []domain.Formula{
		atom("always", nil),
		atom("buildtime", domain.FilterVar{Name: "build"}),
		atom("posttime", domain.FilterVar{Name: "post"}),
		atom("devonly", domain.FilterVar{Name: "dev"}),
		atom("testonly", domain.FilterVar{Name: "with-test"}),
		atom("doconly", domain.FilterVar{Name: "with-doc"}),
	}}

	deps := rc.FilterDeps(domain.PackageID{Name: "libfoo", Version: "1.0"}, formula)

	want := []string{"always", "buildtime", "posttime"}
	if len(deps) != len(want) {
		t.Fatalf("expected %v, got %v", want, deps)
	}
	for i := range want {
		if deps[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, deps)
		}
	}
}

func TestFilterDeps_FlagsApplyToLocalsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)

	local := pkg("myapp", "dev")
	project := newProject(map[string]*domain.Package{"myapp": local}, nil, "with-test")
	rc := resolve.NewContext(project, repo, log)

	formula := atom("testdep", domain.FilterVar{Name: "with-test"})

	// The project's own formula sees the flag.
	deps := rc.FilterDeps(domain.PackageID{Name: "myapp", Version: "dev"}, formula)
	if len(deps) != 1 || deps[0] != "testdep" {
		t.Errorf("expected local package to keep its test dependency, got %v", deps)
	}

	// A repository package must not, or the graph would grow
	// transitively with every dependency's test suite.
	deps = rc.FilterDeps(domain.PackageID{Name: "libfoo", Version: "1.0"}, formula)
	if len(deps) != 0 {
		t.Errorf("expected repository package to drop its test dependency, got %v", deps)
	}
}

func TestFilterDeps_GuardComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)

	project := newProject(nil, map[string]domain.Value{"os": domain.String("linux")})
	rc := resolve.NewContext(project, repo, log)

	formula := domain.Formula{All: []domain.Formula{
		atom("linuxdep", domain.FilterOp{
			Op:  domain.OpEq,
			Lhs: domain.FilterVar{Name: "os"},
			Rhs: domain.FilterString{Value: "linux"},
		}),
		atom("macdep", domain.FilterOp{
			Op:  domain.OpEq,
			Lhs: domain.FilterVar{Name: "os"},
			Rhs: domain.FilterString{Value: "macos"},
		}),
	}}

	deps := rc.FilterDeps(domain.PackageID{Name: "libfoo", Version: "1.0"}, formula)
	if len(deps) != 1 || deps[0] != "linuxdep" {
		t.Errorf("expected only the linux dependency, got %v", deps)
	}
}

func TestFilterDeps_UnresolvableGuardDropsAtom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)
	rc := resolve.NewContext(newProject(nil, nil), repo, log)

	// A guard referencing a variable that neither the environment nor
	// the axis policy can resolve.
	formula := atom("maybe", domain.FilterVar{Name: "compiler"})

	deps := rc.FilterDeps(domain.PackageID{Name: "libfoo", Version: "1.0"}, formula)
	if len(deps) != 0 {
		t.Errorf("expected unresolvable guard to drop the atom, got %v", deps)
	}
}

func TestFilterDeps_DuplicatesPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)
	rc := resolve.NewContext(newProject(nil, nil), repo, log)

	formula := domain.Formula{All: []domain.Formula{
		atom("dup", nil),
		atom("other", nil),
		atom("dup", nil),
	}}

	deps := rc.FilterDeps(domain.PackageID{Name: "libfoo", Version: "1.0"}, formula)
	want := []string{"dup", "other", "dup"}
	if len(deps) != len(want) {
		t.Fatalf("expected %v, got %v", want, deps)
	}
	for i := range want {
		if deps[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, deps)
		}
	}
}
