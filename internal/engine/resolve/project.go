package resolve

import "go.trai.ch/relock/internal/core/domain"

// axisDefaults is the fixed collapse policy for dependency formulas:
// build and post dependencies are included, dev, test and doc
// dependencies are excluded. These are not configurable; the
// environment's flags override with-test/with-doc for local packages
// only, before this policy applies.
var axisDefaults = map[string]bool{
	"build":     true,
	"post":      true,
	"dev":       false,
	"with-test": false,
	"with-doc":  false,
}

// FilterDeps implements ports.CandidateSource. It projects a package's
// dependency formula to the plain list of dependency names, preserving
// left-to-right atom order. Duplicates are kept; deduplication is the
// solver's concern.
//
// Flags apply only to local packages' own formulas: a repository
// dependency must never pull in its test or doc dependencies,
// regardless of the project's flags, or the graph would grow without
// bound transitively.
func (c *Context) FilterDeps(id domain.PackageID, formula domain.Formula) []string {
	env := c.project.Env
	if !c.isLocal(id.Name) {
		env = env.WithoutFlags()
	}

	var deps []string
	formula.Atoms(func(dep domain.Dependency) bool {
		if dep.Guard == nil {
			deps = append(deps, dep.Name)
			return true
		}
		guard := domain.ResolveFilter(env, dep.Guard)
		guard = applyAxisDefaults(guard)
		keep, err := domain.EvalToBool(guard)
		// A guard that still cannot evaluate drops the atom; the
		// formula belongs to an already-chosen package, so this is
		// not the availability warning path.
		if err == nil && keep {
			deps = append(deps, dep.Name)
		}
		return true
	})
	return deps
}

// applyAxisDefaults substitutes the fixed axis policy for variable
// references the environment left unresolved.
func applyAxisDefaults(f domain.Filter) domain.Filter {
	switch node := f.(type) {
	case domain.FilterVar:
		if val, ok := axisDefaults[node.Name]; ok {
			return domain.FilterBool{Value: val}
		}
		return node
	case domain.FilterNot:
		return domain.FilterNot{Arg: applyAxisDefaults(node.Arg)}
	case domain.FilterAnd:
		return domain.FilterAnd{Args: applyAxisDefaultsAll(node.Args)}
	case domain.FilterOr:
		return domain.FilterOr{Args: applyAxisDefaultsAll(node.Args)}
	case domain.FilterOp:
		return domain.FilterOp{
			Op:  node.Op,
			Lhs: applyAxisDefaults(node.Lhs),
			Rhs: applyAxisDefaults(node.Rhs),
		}
	default:
		return f
	}
}

func applyAxisDefaultsAll(args []domain.Filter) []domain.Filter {
	out := make([]domain.Filter, len(args))
	for i, a := range args {
		out[i] = applyAxisDefaults(a)
	}
	return out
}
