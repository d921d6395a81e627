package domain

// ValueKind discriminates the states a solver environment variable can be in.
type ValueKind int

const (
	// ValueUnset marks a variable that is deliberately left undefined.
	// For system variables this widens the generated lock to any host.
	ValueUnset ValueKind = iota
	// ValueString is a literal string value.
	ValueString
	// ValueBool is a literal boolean value.
	ValueBool
)

// Value is the tagged value of a single solver environment variable.
type Value struct {
	Kind ValueKind
	Str  string
	Bool bool
}

// Unset returns an explicitly unset value.
func Unset() Value { return Value{Kind: ValueUnset} }

// String returns a string value.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// systemVariables are the variables that describe the host rather than
// the project. Leaving one unset means the lock must stay valid for any
// value of that property.
var systemVariables = map[string]struct{}{
	"arch":            {},
	"os":              {},
	"os-version":      {},
	"os-distribution": {},
	"os-family":       {},
}

// IsSystemVariable reports whether name describes the hosting system.
func IsSystemVariable(name string) bool {
	_, ok := systemVariables[name]
	return ok
}

// SolverEnv describes the target environment a resolution runs against.
// It is immutable once constructed; derive variants with WithoutFlags.
type SolverEnv struct {
	vars  map[string]Value
	flags map[string]struct{}
}

// NewSolverEnv builds an environment from variable bindings and enabled
// flag names. Flags toggle optional dependency classes (with-test,
// with-doc) and read as boolean true when looked up.
func NewSolverEnv(vars map[string]Value, flags []string) *SolverEnv {
	env := &SolverEnv{
		vars:  make(map[string]Value, len(vars)),
		flags: make(map[string]struct{}, len(flags)),
	}
	for name, v := range vars {
		env.vars[name] = v
	}
	for _, f := range flags {
		env.flags[f] = struct{}{}
	}
	return env
}

// Lookup returns the value bound to name. Enabled flags read as true.
func (e *SolverEnv) Lookup(name string) (Value, bool) {
	if _, ok := e.flags[name]; ok {
		return Bool(true), true
	}
	v, ok := e.vars[name]
	return v, ok
}

// UnsetSystem reports whether name is a system variable with no usable
// value in this environment. Both an absent binding and an explicit
// unset count.
func (e *SolverEnv) UnsetSystem(name string) bool {
	if !IsSystemVariable(name) {
		return false
	}
	v, ok := e.vars[name]
	return !ok || v.Kind == ValueUnset
}

// WithoutFlags returns a copy of the environment with every flag
// cleared. Used when projecting a non-local package's formula so the
// project's test/doc toggles never leak into repository dependencies.
func (e *SolverEnv) WithoutFlags() *SolverEnv {
	return &SolverEnv{vars: e.vars, flags: nil}
}

// Flags returns the enabled flag names in unspecified order.
func (e *SolverEnv) Flags() []string {
	out := make([]string, 0, len(e.flags))
	for f := range e.flags {
		out = append(out, f)
	}
	return out
}
