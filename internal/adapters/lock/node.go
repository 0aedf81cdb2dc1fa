package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/config"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
)

// NodeID is the unique identifier for the activation lock Graft node.
const NodeID graft.ID = "adapter.lock"

func init() {
	graft.Register(graft.Node[ports.Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Locker, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileLocker(settings.Layout.LockFile()), nil
		},
	})
}
