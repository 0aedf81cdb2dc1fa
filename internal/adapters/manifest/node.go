package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dist/internal/core/ports"
)

// NodeID is the unique identifier for the catalog parser Graft node.
const NodeID graft.ID = "adapter.catalog_parser"

func init() {
	graft.Register(graft.Node[ports.CatalogParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CatalogParser, error) {
			return NewParser(), nil
		},
	})
}
