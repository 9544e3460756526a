package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
)

var (
	_ ports.Telemetry = (*OTelTelemetry)(nil)
	_ ports.Vertex    = (*OTelVertex)(nil)
)

const (
	attrInternal = attribute.Key("cuv.internal")
	attrCached   = attribute.Key("cuv.cached")
)

// OTelTelemetry records vertices as OpenTelemetry spans.
type OTelTelemetry struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// NewOTelTelemetryWithProvider creates an OTelTelemetry recording to a tracer
// of provider. Close shuts the provider down.
func NewOTelTelemetryWithProvider(provider *sdktrace.TracerProvider, name string) *OTelTelemetry {
	return &OTelTelemetry{tracer: provider.Tracer(name), provider: provider}
}

// NewOTelTelemetryWithTracer creates an OTelTelemetry recording to tracer.
func NewOTelTelemetryWithTracer(tracer trace.Tracer) *OTelTelemetry {
	return &OTelTelemetry{tracer: tracer}
}

// Record starts a span named name.
func (t *OTelTelemetry) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := &ports.VertexConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrInternal.Bool(cfg.Internal)))
	v := &OTelVertex{span: span}
	v.stdout = NewLineBuffer(0, 0, v.event("stdout"))
	v.stderr = NewLineBuffer(0, 0, v.event("stderr"))
	return ports.ContextWithVertex(ctx, v), v
}

// Close shuts down the owned tracer provider, flushing its span processors.
func (t *OTelTelemetry) Close() error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(context.Background())
}

// OTelVertex is a vertex backed by a span.
type OTelVertex struct {
	span   trace.Span
	stdout *LineBuffer
	stderr *LineBuffer
}

func (v *OTelVertex) event(stream string) func([]byte) {
	return func(data []byte) {
		v.span.AddEvent(stream, trace.WithAttributes(attribute.String("data", string(data))))
	}
}

// Stdout returns a writer adding batched output as span events.
func (v *OTelVertex) Stdout() io.Writer {
	return v.stdout
}

// Stderr returns a writer adding batched error output as span events.
func (v *OTelVertex) Stderr() io.Writer {
	return v.stderr
}

// Log adds a log event to the span.
func (v *OTelVertex) Log(level domain.LogLevel, msg string) {
	v.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete flushes pending output and ends the span.
func (v *OTelVertex) Complete(err error) {
	_ = v.stdout.Close()
	_ = v.stderr.Close()
	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	} else {
		v.span.SetStatus(codes.Ok, "")
	}
	v.span.End()
}

// Cached marks the span as satisfied from cache.
func (v *OTelVertex) Cached() {
	v.span.SetAttributes(attrCached.Bool(true))
}
