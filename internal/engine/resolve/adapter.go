package resolve

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Solve runs the external solving algorithm over the project's local
// packages as roots, with this context wired in as the candidate
// source. Every failure mode comes back typed:
//
//   - domain.ErrMetadataParse: malformed repository data, fatal but
//     expected, reported with the parse diagnostic;
//   - domain.ErrUnsatisfiable: no satisfying assignment, reported with
//     the solver's rejection explanations;
//   - domain.ErrSolverInternal: anything else, including panics from
//     the solver, retaining the original payload. A contract
//     violation, never silently swallowed.
func Solve(ctx context.Context, rc *Context, solver ports.Solver) (solution domain.Solution, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(ErrSolverPanic(r), "roots", fmt.Sprint(roots(rc)))
		}
	}()

	solution, err = solver.Solve(ctx, roots(rc), rc)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMetadataParse):
			return nil, err
		case errors.Is(err, domain.ErrUnsatisfiable):
			return nil, err
		default:
			return nil, zerr.Wrap(err, domain.ErrSolverInternal.Error())
		}
	}
	return solution, nil
}

// ErrSolverPanic wraps a recovered panic payload as an internal error.
func ErrSolverPanic(payload any) error {
	return zerr.With(domain.ErrSolverInternal, "panic", fmt.Sprint(payload))
}

// roots returns the local package names in sorted order so repeated
// runs hand the solver an identical starting point.
func roots(rc *Context) []string {
	names := rc.project.LocalNames()
	sort.Strings(names)
	return names
}
