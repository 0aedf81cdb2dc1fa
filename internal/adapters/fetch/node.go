package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/adapters/config"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
)

// NodeID is the unique identifier for the catalog fetcher Graft node.
const NodeID graft.ID = "adapter.catalog_fetcher"

func init() {
	graft.Register(graft.Node[ports.CatalogFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CatalogFetcher, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := New(settings.CatalogURL)
			if err != nil {
				return Broken{Err: err}, nil
			}
			return fetcher, nil
		},
	})
}
