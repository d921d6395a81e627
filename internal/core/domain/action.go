package domain

// PackageVariable is a package-scoped variable a lock entry's action
// may reference at install time, e.g. %{name} or %{lib}.
type PackageVariable string

// packageVariables is the closed set of recognized package variables.
var packageVariables = map[string]struct{}{
	"name":    {},
	"version": {},
	"prefix":  {},
	"lib":     {},
	"bin":     {},
	"sbin":    {},
	"share":   {},
	"doc":     {},
	"etc":     {},
	"man":     {},
	"make":    {},
	"jobs":    {},
}

// LookupPackageVariable resolves a variable name against the known
// package-variable set.
func LookupPackageVariable(name string) (PackageVariable, bool) {
	if _, ok := packageVariables[name]; ok {
		return PackageVariable(name), true
	}
	return "", false
}

// TermKind discriminates action terms.
type TermKind int

const (
	// TermLiteral is literal program text.
	TermLiteral TermKind = iota
	// TermVarRef is a reference to a package variable, expanded by
	// whoever executes the action.
	TermVarRef
)

// Term is one argument of a Run action.
type Term struct {
	Kind TermKind
	Text string
	Var  PackageVariable
}

// LiteralTerm builds a literal term.
func LiteralTerm(s string) Term { return Term{Kind: TermLiteral, Text: s} }

// VarRefTerm builds a variable-reference term.
func VarRefTerm(v PackageVariable) Term { return Term{Kind: TermVarRef, Var: v} }

// String renders the term in source syntax.
func (t Term) String() string {
	if t.Kind == TermVarRef {
		return "%{" + string(t.Var) + "}"
	}
	return t.Text
}

// Action is a structured, executable representation of a package's
// build or install recipe. It is either a single Run or a sequential
// Progn composition; this core never executes one.
type Action interface {
	isAction()
}

// RunAction invokes one program with arguments.
type RunAction struct {
	Prog Term
	Args []Term
}

// PrognAction runs its actions sequentially in source order.
type PrognAction struct {
	Actions []Action
}

func (RunAction) isAction()   {}
func (PrognAction) isAction() {}
