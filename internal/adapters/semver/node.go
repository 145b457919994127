package semver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the version predicate Graft node.
const NodeID graft.ID = "adapter.version_predicate"

func init() {
	graft.Register(graft.Node[ports.VersionPredicate]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionPredicate, error) {
			return NewPredicate(), nil
		},
	})
}
