package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// CandidateSource is the capability bundle a solver needs from the
// resolution core. The core implements it; the solver consumes it.
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type CandidateSource interface {
	// Candidates returns the (version, outcome) pairs for name in
	// already-correct priority order. An empty list means the name is
	// entirely unknown; the solver reports that as unsatisfiable.
	Candidates(ctx context.Context, name string) ([]domain.Candidate, error)

	// UserRestrictions returns an extra constraint imposed on name
	// from outside the manifests. The empty string means none.
	UserRestrictions(name string) string

	// FilterDeps projects a package's dependency formula to the plain
	// list of dependency names under the target environment.
	FilterDeps(id domain.PackageID, formula domain.Formula) []string
}

// Solver computes a version assignment for the root packages.
// Failure to find one is reported as domain.ErrUnsatisfiable carrying
// the structured rejection explanations.
type Solver interface {
	Solve(ctx context.Context, roots []string, src CandidateSource) (domain.Solution, error)
}
