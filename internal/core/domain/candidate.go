package domain

// Rejection is the reason a candidate version was excluded from
// consideration before the solver ever saw its metadata.
type Rejection int

const (
	// NotRejected marks a usable candidate.
	NotRejected Rejection = iota
	// RejectedUnavailable marks a candidate whose availability
	// condition resolved to false or could not be evaluated.
	RejectedUnavailable
)

// Reason returns the stable, human-readable text attached to the
// rejection for solver diagnostics.
func (r Rejection) Reason() string {
	switch r {
	case RejectedUnavailable:
		return "Availability condition not satisfied"
	default:
		return ""
	}
}

// Candidate is one (version, outcome) pair offered to the solver for a
// package name. Meta is nil iff Rejected is set.
type Candidate struct {
	Version  string
	Meta     *Package
	Rejected Rejection
}

// OK reports whether the candidate is selectable.
func (c Candidate) OK() bool { return c.Rejected == NotRejected }

// Solution is the version assignment chosen by the solver, in the
// order packages were decided.
type Solution []PackageID
