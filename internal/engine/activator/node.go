package activator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/lock"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/dist/internal/engine/active"
	"go.trai.ch/dist/internal/engine/registry"
)

// NodeID is the unique identifier for the activator Graft node.
const NodeID graft.ID = "engine.activator"

func init() {
	graft.Register(graft.Node[*Activator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			active.NodeID,
			fs.LinkerNodeID,
			lock.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Activator, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			activeStore, err := graft.Dep[*active.Store](ctx)
			if err != nil {
				return nil, err
			}

			linker, err := graft.Dep[ports.Linker](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[ports.Locker](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(reg, activeStore, linker, locker, tracer, log, settings.LockTimeout), nil
		},
	})
}
