package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/config"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
)

// NodeID is the unique identifier for the pointer storage Graft node.
const NodeID graft.ID = "adapter.pointer_storage"

func init() {
	graft.Register(graft.Node[ports.PointerStorage]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PointerStorage, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewPointerFile(settings.Layout.ActiveFile()), nil
		},
	})
}
