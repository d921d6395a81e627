package resolve

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/relock/internal/core/domain"
)

// Candidates implements ports.CandidateSource. It returns the
// (version, outcome) pairs for name, ordered by the project's version
// preference so the solver sees candidates in priority order.
//
// Local packages short-circuit to a single always-available candidate.
// A name entirely unknown to the repository yields an empty list; the
// solver is responsible for reporting that as unsatisfiable.
func (c *Context) Candidates(ctx context.Context, name string) ([]domain.Candidate, error) {
	if local, ok := c.project.Locals[name]; ok {
		return []domain.Candidate{localCandidate(local)}, nil
	}

	versions, err := c.repo.LoadAllVersions(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			return nil, nil
		}
		return nil, err
	}

	byVersion := make(map[string]*domain.Package, len(versions))
	order := make([]string, 0, len(versions))
	for _, pkg := range versions {
		byVersion[pkg.Version] = pkg
		order = append(order, pkg.Version)
	}
	domain.SortVersions(order, c.project.Preference)

	candidates := make([]domain.Candidate, 0, len(order))
	for _, version := range order {
		candidates = append(candidates, c.checkAvailability(byVersion[version]))
	}
	return candidates, nil
}

// localCandidate wraps a local package as its only candidate: the
// declared version or the dev sentinel, never availability-filtered.
func localCandidate(pkg *domain.Package) domain.Candidate {
	version := pkg.Version
	if version == "" {
		version = defaultLocalVersion
	}
	return domain.Candidate{Version: version, Meta: pkg}
}

// checkAvailability evaluates a candidate's availability filter
// against the target environment. Everything reaching this point came
// from the repository (locals short-circuit earlier), so the flags are
// cleared first: flags describe the project, never a repository
// package. A filter that resolves to false rejects the candidate
// silently; one that cannot be reduced to a boolean warns once per
// identity and rejects as well. A single malformed filter must never
// abort the resolution.
func (c *Context) checkAvailability(pkg *domain.Package) domain.Candidate {
	if pkg.Available == nil {
		return domain.Candidate{Version: pkg.Version, Meta: pkg}
	}

	resolved := domain.ResolveFilter(c.project.Env.WithoutFlags(), pkg.Available)
	available, err := domain.EvalToBool(resolved)
	if err != nil {
		c.warnOnce(pkg.ID(), fmt.Sprintf(
			"package %s: availability condition %s is not a boolean: %v",
			pkg.ID(), pkg.Available.String(), err))
		return domain.Candidate{Version: pkg.Version, Rejected: domain.RejectedUnavailable}
	}
	if !available {
		return domain.Candidate{Version: pkg.Version, Rejected: domain.RejectedUnavailable}
	}
	return domain.Candidate{Version: pkg.Version, Meta: pkg}
}
