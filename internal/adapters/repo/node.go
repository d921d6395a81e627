package repo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the repository opener Graft node.
const NodeID graft.ID = "adapter.repository_opener"

func init() {
	graft.Register(graft.Node[ports.RepositoryOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RepositoryOpener, error) {
			return Opener{}, nil
		},
	})
}
