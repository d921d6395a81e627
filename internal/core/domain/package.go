package domain

// PackageID identifies one concrete version of a package.
type PackageID struct {
	Name    string
	Version string
}

// String renders the identity in the repository's "name.version" form.
func (id PackageID) String() string { return id.Name + "." + id.Version }

// ArgKind discriminates the two shapes a raw command argument can take.
type ArgKind int

const (
	// ArgLiteral is a plain string argument.
	ArgLiteral ArgKind = iota
	// ArgIdent references a package-scoped variable, written
	// %{owner:var} in the source metadata.
	ArgIdent
)

// CommandArg is one argument of a raw build or install command, as it
// appears in already-parsed package metadata.
type CommandArg struct {
	Kind ArgKind
	// Value is the literal text for ArgLiteral, or the unparsed
	// [owner:]variable spelling for ArgIdent.
	Value string
}

// Literal builds a literal command argument.
func Literal(s string) CommandArg { return CommandArg{Kind: ArgLiteral, Value: s} }

// Ident builds an identifier command argument.
func Ident(s string) CommandArg { return CommandArg{Kind: ArgIdent, Value: s} }

// Package is the metadata of one package version, the unit stored in a
// repository and declared by local manifests. The raw format has
// already been parsed by the time a Package exists; this core only
// interprets it.
type Package struct {
	Name    string
	Version string

	// Available guards whether this version may be selected at all.
	// A nil filter means unconditionally available.
	Available Filter

	// Depends is the package's dependency formula.
	Depends Formula

	// Build and Install are the raw command lists to translate into
	// actions. Each inner slice is one command.
	Build   [][]CommandArg
	Install [][]CommandArg
}

// ID returns the package's identity.
func (p *Package) ID() PackageID { return PackageID{Name: p.Name, Version: p.Version} }
