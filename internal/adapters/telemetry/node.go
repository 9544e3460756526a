package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cuv/internal/adapters/logger"
	"go.trai.ch/cuv/internal/adapters/telemetry/progrock"
	"go.trai.ch/cuv/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used for OpenTelemetry spans.
const InstrumentationName = "go.trai.ch/cuv"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			recorder, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(log)))
			otel.SetTracerProvider(tp)

			return NewMulti(recorder, NewOTelTelemetryWithProvider(tp, InstrumentationName)), nil
		},
	})
}
