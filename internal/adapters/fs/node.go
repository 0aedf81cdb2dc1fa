package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/config"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
)

const (
	// InstalledStoreNodeID is the unique identifier for the installed store Graft node.
	InstalledStoreNodeID graft.ID = "adapter.fs.installed"
	// LinkerNodeID is the unique identifier for the current link Graft node.
	LinkerNodeID graft.ID = "adapter.fs.linker"
)

func init() {
	graft.Register(graft.Node[ports.InstalledStore]{
		ID:        InstalledStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.InstalledStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstalledStore(settings.Layout), nil
		},
	})

	graft.Register(graft.Node[ports.Linker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Linker, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewSymlinkLinker(settings.Layout), nil
		},
	})
}
