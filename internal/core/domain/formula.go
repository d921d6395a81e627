package domain

// Dependency is a single atom of a dependency formula: a package name,
// an optional version constraint, and an optional filter guard.
type Dependency struct {
	Name string
	// Constraint is the raw version constraint. It is carried through
	// for diagnostics; projection drops it, constraint checking is the
	// solver's concern.
	Constraint string
	// Guard conditions the atom on the environment. Nil means always.
	Guard Filter
}

// Formula is a dependency formula: exactly one of Atom, All or Any is
// populated. All is a conjunction, Any a disjunction. The zero value
// is the empty formula.
type Formula struct {
	Atom *Dependency
	All  []Formula
	Any  []Formula
}

// Atoms yields the formula's dependency atoms in left-to-right source
// order. Duplicates are preserved; deduplication is the solver's
// concern.
func (f Formula) Atoms(yield func(Dependency) bool) bool {
	if f.Atom != nil {
		return yield(*f.Atom)
	}
	for _, sub := range f.All {
		if !sub.Atoms(yield) {
			return false
		}
	}
	for _, sub := range f.Any {
		if !sub.Atoms(yield) {
			return false
		}
	}
	return true
}
