// Package solver implements the version-solving algorithm behind
// ports.Solver. It walks the dependency graph from the root packages,
// taking the first acceptable candidate for every name; the candidate
// source already orders candidates by the configured version
// preference, so first-fit encodes the preference.
package solver

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Basic is a deterministic work-list solver.
type Basic struct{}

// New creates a new solver.
func New() *Basic { return &Basic{} }

// Solve computes a version assignment covering roots and everything
// they transitively depend on. Unsatisfiable packages are reported
// through domain.ErrUnsatisfiable carrying the structured rejection
// explanations, never a generic "no solution".
func (s *Basic) Solve(ctx context.Context, roots []string, src ports.CandidateSource) (domain.Solution, error) {
	chosen := make(map[string]domain.PackageID)
	var solution domain.Solution
	queue := append([]string(nil), roots...)
	diag := newDiagnostics()

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, done := chosen[name]; done {
			continue
		}

		candidates, err := src.Candidates(ctx, name)
		if err != nil {
			return nil, err
		}

		pick, found := s.pick(name, candidates, src, diag)
		if !found {
			continue
		}

		id := domain.PackageID{Name: name, Version: pick.Version}
		chosen[name] = id
		solution = append(solution, id)

		for _, dep := range src.FilterDeps(id, pick.Meta.Depends) {
			if _, done := chosen[dep]; !done {
				queue = append(queue, dep)
			}
		}
	}

	if diag.failed() {
		return nil, zerr.With(domain.ErrUnsatisfiable, "diagnostics", diag.render())
	}
	return solution, nil
}

// pick returns the first acceptable candidate, recording every
// rejection along the way for diagnostics.
func (s *Basic) pick(name string, candidates []domain.Candidate, src ports.CandidateSource, diag *diagnostics) (domain.Candidate, bool) {
	if len(candidates) == 0 {
		diag.noVersions(name)
		return domain.Candidate{}, false
	}

	restriction := src.UserRestrictions(name)
	for _, cand := range candidates {
		if !cand.OK() {
			diag.rejected(name, cand.Version, cand.Rejected.Reason())
			continue
		}
		if restriction != "" && cand.Version != restriction {
			diag.rejected(name, cand.Version, "restricted to "+restriction)
			continue
		}
		return cand, true
	}

	diag.exhausted(name)
	return domain.Candidate{}, false
}
