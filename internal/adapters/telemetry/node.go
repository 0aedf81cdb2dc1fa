package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/dist/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dist/internal/core/ports"
)

const (
	// BridgeNodeID is the unique identifier for the span log bridge Graft node.
	BridgeNodeID graft.ID = "adapter.telemetry.bridge"
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[*LogBridge]{
		ID:        BridgeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*LogBridge, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogBridge(log), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BridgeNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			bridge, err := graft.Dep[*LogBridge](ctx)
			if err != nil {
				return nil, err
			}
			provider := trace.NewTracerProvider(trace.WithSpanProcessor(bridge))
			return NewOTelTracer(provider), nil
		},
	})
}
