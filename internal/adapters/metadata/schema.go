// Package metadata defines the YAML representation of already-parsed
// package metadata (filters, dependency formulas, command lists) and
// its conversion to domain types. Both the repository and the manifest
// adapters decode through it.
package metadata

// PackageDTO is the on-disk shape of one package version.
type PackageDTO struct {
	Name      string       `yaml:"name"`
	Version   string       `yaml:"version"`
	Available *FilterDTO   `yaml:"available,omitempty"`
	Depends   []FormulaDTO `yaml:"depends,omitempty"`
	Build     [][]ArgDTO   `yaml:"build,omitempty"`
	Install   [][]ArgDTO   `yaml:"install,omitempty"`
}

// FilterDTO is one node of a filter expression tree. Exactly one field
// is populated.
type FilterDTO struct {
	Bool *bool       `yaml:"bool,omitempty"`
	Str  *string     `yaml:"str,omitempty"`
	Var  *string     `yaml:"var,omitempty"`
	Not  *FilterDTO  `yaml:"not,omitempty"`
	And  []FilterDTO `yaml:"and,omitempty"`
	Or   []FilterDTO `yaml:"or,omitempty"`

	// Op with Lhs/Rhs form a comparison.
	Op  string     `yaml:"op,omitempty"`
	Lhs *FilterDTO `yaml:"lhs,omitempty"`
	Rhs *FilterDTO `yaml:"rhs,omitempty"`
}

// FormulaDTO is one node of a dependency formula. A node is either an
// atom (Name set) or a group (All/Any set).
type FormulaDTO struct {
	Name       string       `yaml:"name,omitempty"`
	Constraint string       `yaml:"constraint,omitempty"`
	Filter     *FilterDTO   `yaml:"filter,omitempty"`
	All        []FormulaDTO `yaml:"all,omitempty"`
	Any        []FormulaDTO `yaml:"any,omitempty"`
}

// ArgDTO is one argument of a raw command: a literal or a
// package-variable identifier.
type ArgDTO struct {
	Lit   *string `yaml:"lit,omitempty"`
	Ident *string `yaml:"ident,omitempty"`
}
