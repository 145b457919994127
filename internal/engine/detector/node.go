package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/semver" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "engine.detector"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			semver.NodeID,
		},
		Run: func(ctx context.Context) (*Detector, error) {
			versions, err := graft.Dep[ports.VersionPredicate](ctx)
			if err != nil {
				return nil, err
			}
			return New(versions), nil
		},
	})
}
