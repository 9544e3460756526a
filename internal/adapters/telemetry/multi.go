package telemetry

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
)

// Multi fans every vertex out to several telemetry backends.
type Multi struct {
	backends []ports.Telemetry
}

// NewMulti returns a Multi recording to all backends, in order.
func NewMulti(backends ...ports.Telemetry) *Multi {
	return &Multi{backends: backends}
}

// Record starts a vertex on every backend. The returned context carries each
// backend's state and the combined vertex.
func (m *Multi) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	vertices := make(multiVertex, 0, len(m.backends))
	for _, b := range m.backends {
		var v ports.Vertex
		ctx, v = b.Record(ctx, name, opts...)
		vertices = append(vertices, v)
	}
	return ports.ContextWithVertex(ctx, vertices), vertices
}

// Close closes every backend and joins their errors.
func (m *Multi) Close() error {
	var errs error
	for _, b := range m.backends {
		errs = errors.Join(errs, b.Close())
	}
	return errs
}

type multiVertex []ports.Vertex

func (mv multiVertex) Stdout() io.Writer {
	writers := make([]io.Writer, len(mv))
	for i, v := range mv {
		writers[i] = v.Stdout()
	}
	return io.MultiWriter(writers...)
}

func (mv multiVertex) Stderr() io.Writer {
	writers := make([]io.Writer, len(mv))
	for i, v := range mv {
		writers[i] = v.Stderr()
	}
	return io.MultiWriter(writers...)
}

func (mv multiVertex) Log(level domain.LogLevel, msg string) {
	for _, v := range mv {
		v.Log(level, msg)
	}
}

func (mv multiVertex) Complete(err error) {
	for _, v := range mv {
		v.Complete(err)
	}
}

func (mv multiVertex) Cached() {
	for _, v := range mv {
		v.Cached()
	}
}
