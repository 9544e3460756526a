package telemetry

import (
	"context"
	"io"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex discarding everything.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := noOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Stdout() io.Writer               { return io.Discard }
func (noOpVertex) Stderr() io.Writer               { return io.Discard }
func (noOpVertex) Log(_ domain.LogLevel, _ string) {}
func (noOpVertex) Complete(_ error)                {}
func (noOpVertex) Cached()                         {}
