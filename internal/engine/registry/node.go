package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.InstalledStoreNodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			store, err := graft.Dep[ports.InstalledStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(store), nil
		},
	})
}
