package active

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/state" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/core/ports"
)

// NodeID is the unique identifier for the active store Graft node.
const NodeID graft.ID = "engine.active"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{state.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			storage, err := graft.Dep[ports.PointerStorage](ctx)
			if err != nil {
				return nil, err
			}
			return New(storage), nil
		},
	})
}
