package domain

import "go.trai.ch/zerr"

var (
	// ErrNotBoolean is returned when a filter cannot be reduced to a
	// boolean value.
	ErrNotBoolean = zerr.New("filter does not evaluate to a boolean")

	// ErrInvalidPreference is returned for an unrecognized version
	// preference spelling.
	ErrInvalidPreference = zerr.New("invalid version preference, expected 'oldest' or 'newest'")

	// ErrPackageNotFound is returned when the repository has no
	// versions at all for a requested package name.
	ErrPackageNotFound = zerr.New("package not found in repository")

	// ErrMetadataParse is returned when repository metadata cannot be
	// decoded. This is bad input, not a programming error.
	ErrMetadataParse = zerr.New("failed to parse package metadata")

	// ErrUnsatisfiable is returned when no version assignment
	// satisfies the dependency constraints.
	ErrUnsatisfiable = zerr.New("no satisfying version assignment")

	// ErrSolverInternal is returned when the solver fails in a way
	// that indicates a contract violation rather than bad input.
	ErrSolverInternal = zerr.New("internal solver error")

	// ErrUnknownVariable is returned when a command references a
	// variable name outside the package-variable set.
	ErrUnknownVariable = zerr.New("unknown package variable in command")

	// ErrCrossPackageVariable is returned when a command references
	// another package's variable, which is not supported.
	ErrCrossPackageVariable = zerr.New("cross-package variable references are not supported")

	// ErrDuplicateLockEntry is returned when two lock entries share a
	// package name. The solver guarantees uniqueness, so this is a
	// contract violation.
	ErrDuplicateLockEntry = zerr.New("duplicate package name in lock directory")

	// ErrLocalPackageInLock is returned when a local package reaches
	// the lock directory factory. Local packages are built from
	// source, never locked.
	ErrLocalPackageInLock = zerr.New("local package must not appear in lock directory")

	// ErrManifestRead is returned when the project manifest cannot be
	// read.
	ErrManifestRead = zerr.New("failed to read project manifest")

	// ErrManifestParse is returned when the project manifest cannot be
	// parsed.
	ErrManifestParse = zerr.New("failed to parse project manifest")

	// ErrRepositoryOpen is returned when the package repository root
	// cannot be opened.
	ErrRepositoryOpen = zerr.New("failed to open package repository")

	// ErrLockWrite is returned when the lock directory cannot be
	// persisted.
	ErrLockWrite = zerr.New("failed to write lock directory")
)
