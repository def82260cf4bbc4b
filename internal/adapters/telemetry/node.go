package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cloister/internal/adapters/telemetry/progrock"
	"go.trai.ch/cloister/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Tracer adapter Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			recorder, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			// Spans are mirrored onto the progress tape through the bridge.
			tp := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(NewTapeBridge(recorder)),
			)
			otel.SetTracerProvider(tp)

			return NewOTelTracer("cloister"), nil
		},
	})
}
