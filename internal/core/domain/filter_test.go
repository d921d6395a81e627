package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/relock/internal/core/domain"
)

func env(vars map[string]domain.Value, flags ...string) *domain.SolverEnv {
	return domain.NewSolverEnv(vars, flags)
}

func TestResolveFilter_SubstitutesVariables(t *testing.T) {
	e := env(map[string]domain.Value{
		"os":    domain.String("linux"),
		"debug": domain.Bool(true),
	})

	resolved := domain.ResolveFilter(e, domain.FilterVar{Name: "os"})
	if s, ok := resolved.(domain.FilterString); !ok || s.Value != "linux" {
		t.Errorf("expected string literal \"linux\", got %v", resolved)
	}

	resolved = domain.ResolveFilter(e, domain.FilterVar{Name: "debug"})
	if b, ok := resolved.(domain.FilterBool); !ok || !b.Value {
		t.Errorf("expected boolean literal true, got %v", resolved)
	}
}

func TestResolveFilter_UnknownVariableStays(t *testing.T) {
	e := env(nil)

	resolved := domain.ResolveFilter(e, domain.FilterVar{Name: "mystery"})
	if v, ok := resolved.(domain.FilterVar); !ok || v.Name != "mystery" {
		t.Errorf("expected variable to remain unresolved, got %v", resolved)
	}
}

func TestResolveFilter_FlagsReadAsTrue(t *testing.T) {
	e := env(nil, "with-test")

	resolved := domain.ResolveFilter(e, domain.FilterVar{Name: "with-test"})
	if b, ok := resolved.(domain.FilterBool); !ok || !b.Value {
		t.Errorf("expected enabled flag to resolve to true, got %v", resolved)
	}
}

func TestResolveFilter_UnsetSystemComparisonIsWildcard(t *testing.T) {
	tests := []struct {
		name   string
		env    *domain.SolverEnv
		filter domain.Filter
	}{
		{
			name: "absent system variable",
			env:  env(nil),
			filter: domain.FilterOp{
				Op:  domain.OpEq,
				Lhs: domain.FilterVar{Name: "os"},
				Rhs: domain.FilterString{Value: "linux"},
			},
		},
		{
			name: "explicitly unset system variable",
			env:  env(map[string]domain.Value{"arch": domain.Unset()}),
			filter: domain.FilterOp{
				Op:  domain.OpNeq,
				Lhs: domain.FilterString{Value: "x86_64"},
				Rhs: domain.FilterVar{Name: "arch"},
			},
		},
		{
			name: "nested under the operand",
			env:  env(nil),
			filter: domain.FilterOp{
				Op: domain.OpEq,
				Lhs: domain.FilterOp{
					Op:  domain.OpEq,
					Lhs: domain.FilterVar{Name: "os-family"},
					Rhs: domain.FilterString{Value: "debian"},
				},
				Rhs: domain.FilterBool{Value: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := domain.ResolveFilter(tt.env, tt.filter)
			b, ok := resolved.(domain.FilterBool)
			if !ok || !b.Value {
				t.Errorf("expected comparison to collapse to true, got %v", resolved)
			}
		})
	}
}

func TestResolveFilter_SetSystemComparisonEvaluates(t *testing.T) {
	e := env(map[string]domain.Value{"os": domain.String("linux")})

	resolved := domain.ResolveFilter(e, domain.FilterOp{
		Op:  domain.OpEq,
		Lhs: domain.FilterVar{Name: "os"},
		Rhs: domain.FilterString{Value: "macos"},
	})

	ok, err := domain.EvalToBool(resolved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected os = macos to be false for os=linux")
	}
}

func TestResolveFilter_NonSystemUnsetDoesNotWildcard(t *testing.T) {
	e := env(nil)

	resolved := domain.ResolveFilter(e, domain.FilterOp{
		Op:  domain.OpEq,
		Lhs: domain.FilterVar{Name: "compiler"},
		Rhs: domain.FilterString{Value: "gcc"},
	})

	if _, ok := resolved.(domain.FilterBool); ok {
		t.Error("expected comparison on non-system variable to stay unresolved")
	}
	if _, err := domain.EvalToBool(resolved); !errors.Is(err, domain.ErrNotBoolean) {
		t.Errorf("expected ErrNotBoolean, got %v", err)
	}
}

func TestEvalToBool_Connectives(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.Filter
		want   bool
	}{
		{
			name:   "not",
			filter: domain.FilterNot{Arg: domain.FilterBool{Value: false}},
			want:   true,
		},
		{
			name: "and short-circuits false",
			filter: domain.FilterAnd{Args: []domain.Filter{
				domain.FilterBool{Value: true},
				domain.FilterBool{Value: false},
			}},
			want: false,
		},
		{
			name: "or finds true",
			filter: domain.FilterOr{Args: []domain.Filter{
				domain.FilterBool{Value: false},
				domain.FilterBool{Value: true},
			}},
			want: true,
		},
		{
			name:   "empty and is true",
			filter: domain.FilterAnd{},
			want:   true,
		},
		{
			name:   "empty or is false",
			filter: domain.FilterOr{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.EvalToBool(tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEvalToBool_StringIsNotBoolean(t *testing.T) {
	_, err := domain.EvalToBool(domain.FilterString{Value: "linux"})
	if !errors.Is(err, domain.ErrNotBoolean) {
		t.Fatalf("expected ErrNotBoolean, got %v", err)
	}
}

func TestEvalToBool_UnresolvedVariableIsNotBoolean(t *testing.T) {
	_, err := domain.EvalToBool(domain.FilterVar{Name: "os"})
	if !errors.Is(err, domain.ErrNotBoolean) {
		t.Fatalf("expected ErrNotBoolean, got %v", err)
	}
}

func TestEvalToBool_VersionComparison(t *testing.T) {
	tests := []struct {
		name string
		op   domain.CompareOp
		lhs  string
		rhs  string
		want bool
	}{
		{"numeric greater", domain.OpGt, "1.10", "1.9", true},
		{"tilde sorts before release", domain.OpLt, "1.0~beta", "1.0", true},
		{"equal", domain.OpEq, "2.0", "2.0", true},
		{"not equal", domain.OpNeq, "2.0", "2.1", true},
		{"leading zeros", domain.OpEq, "1.01", "1.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.EvalToBool(domain.FilterOp{
				Op:  tt.op,
				Lhs: domain.FilterString{Value: tt.lhs},
				Rhs: domain.FilterString{Value: tt.rhs},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("%s %s %s: expected %v, got %v", tt.lhs, tt.op, tt.rhs, tt.want, got)
			}
		})
	}
}

func TestFilterString_Rendering(t *testing.T) {
	f := domain.FilterAnd{Args: []domain.Filter{
		domain.FilterVar{Name: "os"},
		domain.FilterNot{Arg: domain.FilterBool{Value: false}},
		domain.FilterOp{
			Op:  domain.OpGeq,
			Lhs: domain.FilterVar{Name: "os-version"},
			Rhs: domain.FilterString{Value: "22.04"},
		},
	}}

	want := `(%{os} & !false & %{os-version} >= "22.04")`
	if got := f.String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
