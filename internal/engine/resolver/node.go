package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/dist/internal/engine/active"
	"go.trai.ch/dist/internal/engine/registry"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			active.NodeID,
			registry.NodeID,
			fetch.NodeID,
			manifest.NodeID,
			telemetry.TracerNodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			activeStore, err := graft.Dep[*active.Store](ctx)
			if err != nil {
				return nil, err
			}

			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.CatalogFetcher](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.CatalogParser](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(activeStore, reg, fetcher, parser, tracer, settings.FetchTimeout), nil
		},
	})
}
