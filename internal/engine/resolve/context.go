// Package resolve implements the dependency resolution core: it turns
// a project's manifests plus a package repository into a reproducible
// lock directory. It implements the candidate-source capability the
// solver consumes and translates install recipes into actions.
package resolve

import (
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

// defaultLocalVersion is the sentinel version for local packages that
// declare none.
const defaultLocalVersion = "dev"

// Context is the read-only bundle one resolution runs against. Its
// only mutable state is the warn-dedup set, scoped to this run so
// repeated lock operations in one process warn independently.
type Context struct {
	repo    ports.Repository
	project *domain.Project
	log     ports.Logger

	// warned tracks package identities already warned about an
	// unparsable availability filter.
	warned map[domain.PackageID]struct{}
}

// NewContext builds a resolution context for one lock operation.
func NewContext(project *domain.Project, repo ports.Repository, log ports.Logger) *Context {
	return &Context{
		repo:    repo,
		project: project,
		log:     log,
		warned:  make(map[domain.PackageID]struct{}),
	}
}

// UserRestrictions implements ports.CandidateSource. This system never
// imposes version pins beyond what the manifests declare.
func (c *Context) UserRestrictions(string) string { return "" }

func (c *Context) isLocal(name string) bool { return c.project.IsLocal(name) }

// warnOnce logs msg once per package identity for this resolution.
func (c *Context) warnOnce(id domain.PackageID, msg string) {
	if _, done := c.warned[id]; done {
		return
	}
	c.warned[id] = struct{}{}
	c.log.Warn(msg)
}
