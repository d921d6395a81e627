// Package domain contains the core models for dependency resolution:
// solver environments, filters, dependency formulas, candidates,
// actions and the lock directory.
package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Filter is a boolean/string expression over environment variables.
// It guards dependency atoms and package availability. Filters are
// immutable; ResolveFilter returns rewritten copies.
type Filter interface {
	isFilter()
	// String renders the filter in opam-like surface syntax for
	// diagnostics.
	String() string
}

// CompareOp is a comparison operator between two filter expressions.
type CompareOp string

const (
	OpEq  CompareOp = "="
	OpNeq CompareOp = "!="
	OpLt  CompareOp = "<"
	OpLeq CompareOp = "<="
	OpGt  CompareOp = ">"
	OpGeq CompareOp = ">="
)

// FilterBool is a boolean constant.
type FilterBool struct{ Value bool }

// FilterString is a string constant.
type FilterString struct{ Value string }

// FilterVar references an environment variable by name.
type FilterVar struct{ Name string }

// FilterNot negates its operand.
type FilterNot struct{ Arg Filter }

// FilterAnd is the conjunction of its operands.
type FilterAnd struct{ Args []Filter }

// FilterOr is the disjunction of its operands.
type FilterOr struct{ Args []Filter }

// FilterOp compares two sub-expressions.
type FilterOp struct {
	Op       CompareOp
	Lhs, Rhs Filter
}

func (FilterBool) isFilter()   {}
func (FilterString) isFilter() {}
func (FilterVar) isFilter()    {}
func (FilterNot) isFilter()    {}
func (FilterAnd) isFilter()    {}
func (FilterOr) isFilter()     {}
func (FilterOp) isFilter()     {}

func (f FilterBool) String() string {
	if f.Value {
		return "true"
	}
	return "false"
}

func (f FilterString) String() string { return fmt.Sprintf("%q", f.Value) }

func (f FilterVar) String() string { return "%{" + f.Name + "}" }

func (f FilterNot) String() string { return "!" + f.Arg.String() }

func (f FilterAnd) String() string { return joinFilters(f.Args, " & ") }

func (f FilterOr) String() string { return joinFilters(f.Args, " | ") }

func (f FilterOp) String() string {
	return f.Lhs.String() + " " + string(f.Op) + " " + f.Rhs.String()
}

func joinFilters(args []Filter, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// ResolveFilter rewrites f bottom-up against env. Variable references
// with a known value are replaced by their literal. A comparison whose
// operands reference a system variable that is unset in env collapses
// to the constant true: an unset system property must never exclude a
// candidate, it degrades to a wildcard. Everything else is rebuilt
// structurally unchanged.
func ResolveFilter(env *SolverEnv, f Filter) Filter {
	switch node := f.(type) {
	case FilterBool, FilterString:
		return node
	case FilterVar:
		v, ok := env.Lookup(node.Name)
		if !ok || v.Kind == ValueUnset {
			return node
		}
		switch v.Kind {
		case ValueString:
			return FilterString{Value: v.Str}
		case ValueBool:
			return FilterBool{Value: v.Bool}
		}
		return node
	case FilterNot:
		return FilterNot{Arg: ResolveFilter(env, node.Arg)}
	case FilterAnd:
		return FilterAnd{Args: resolveAll(env, node.Args)}
	case FilterOr:
		return FilterOr{Args: resolveAll(env, node.Args)}
	case FilterOp:
		if referencesUnsetSystem(env, node.Lhs) || referencesUnsetSystem(env, node.Rhs) {
			return FilterBool{Value: true}
		}
		return FilterOp{
			Op:  node.Op,
			Lhs: ResolveFilter(env, node.Lhs),
			Rhs: ResolveFilter(env, node.Rhs),
		}
	default:
		return f
	}
}

func resolveAll(env *SolverEnv, args []Filter) []Filter {
	out := make([]Filter, len(args))
	for i, a := range args {
		out[i] = ResolveFilter(env, a)
	}
	return out
}

// referencesUnsetSystem reports whether f contains a reference to a
// system variable that is unset in env.
func referencesUnsetSystem(env *SolverEnv, f Filter) bool {
	switch node := f.(type) {
	case FilterVar:
		return env.UnsetSystem(node.Name)
	case FilterNot:
		return referencesUnsetSystem(env, node.Arg)
	case FilterAnd:
		return anyReferencesUnsetSystem(env, node.Args)
	case FilterOr:
		return anyReferencesUnsetSystem(env, node.Args)
	case FilterOp:
		return referencesUnsetSystem(env, node.Lhs) || referencesUnsetSystem(env, node.Rhs)
	default:
		return false
	}
}

func anyReferencesUnsetSystem(env *SolverEnv, args []Filter) bool {
	for _, a := range args {
		if referencesUnsetSystem(env, a) {
			return true
		}
	}
	return false
}

// EvalToBool evaluates a fully substituted filter to a boolean.
// Any remaining variable reference or a string result yields
// ErrNotBoolean with a diagnostic; the caller decides how to react.
func EvalToBool(f Filter) (bool, error) {
	switch node := f.(type) {
	case FilterBool:
		return node.Value, nil
	case FilterString:
		return false, zerr.With(ErrNotBoolean, "filter", f.String())
	case FilterVar:
		return false, zerr.With(
			zerr.With(ErrNotBoolean, "filter", f.String()),
			"unresolved_variable", node.Name)
	case FilterNot:
		v, err := EvalToBool(node.Arg)
		if err != nil {
			return false, err
		}
		return !v, nil
	case FilterAnd:
		for _, a := range node.Args {
			v, err := EvalToBool(a)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case FilterOr:
		for _, a := range node.Args {
			v, err := EvalToBool(a)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case FilterOp:
		return evalCompare(node)
	default:
		return false, zerr.With(ErrNotBoolean, "filter", f.String())
	}
}

func evalCompare(f FilterOp) (bool, error) {
	lhs, err := evalScalar(f.Lhs)
	if err != nil {
		return false, err
	}
	rhs, err := evalScalar(f.Rhs)
	if err != nil {
		return false, err
	}

	cmp := CompareVersions(lhs, rhs)
	switch f.Op {
	case OpEq:
		return cmp == 0, nil
	case OpNeq:
		return cmp != 0, nil
	case OpLt:
		return cmp < 0, nil
	case OpLeq:
		return cmp <= 0, nil
	case OpGt:
		return cmp > 0, nil
	case OpGeq:
		return cmp >= 0, nil
	default:
		return false, zerr.With(ErrNotBoolean, "operator", string(f.Op))
	}
}

// evalScalar reduces a comparison operand to its string form.
// Booleans compare through their textual form, matching opam.
func evalScalar(f Filter) (string, error) {
	switch node := f.(type) {
	case FilterString:
		return node.Value, nil
	case FilterBool:
		return node.String(), nil
	case FilterVar:
		return "", zerr.With(
			zerr.With(ErrNotBoolean, "filter", f.String()),
			"unresolved_variable", node.Name)
	default:
		return "", zerr.With(ErrNotBoolean, "filter", f.String())
	}
}
