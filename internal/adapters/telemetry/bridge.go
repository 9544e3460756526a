package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cuv/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor. It tallies the user-visible spans
// of a run and reports a summary to the logger when the provider shuts down.
type Bridge struct {
	logger ports.Logger

	mu     sync.Mutex
	start  time.Time
	end    time.Time
	steps  int
	cached int
	failed int
}

// NewBridge returns a new Bridge reporting to logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.start.IsZero() || s.StartTime().Before(b.start) {
		b.start = s.StartTime()
	}
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	var internal, cached bool
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attrInternal:
			internal = kv.Value.AsBool()
		case attrCached:
			cached = kv.Value.AsBool()
		}
	}
	if internal {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.steps++
	if cached {
		b.cached++
	}
	if s.Status().Code == codes.Error {
		b.failed++
	}
	if s.EndTime().After(b.end) {
		b.end = s.EndTime()
	}
}

// Summary describes the spans ended so far, or "" if there were none.
func (b *Bridge) Summary() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.steps == 0 {
		return ""
	}
	return fmt.Sprintf("%d steps in %s (%d cached, %d failed)",
		b.steps, b.end.Sub(b.start).Round(time.Millisecond), b.cached, b.failed)
}

// Shutdown reports the summary once.
func (b *Bridge) Shutdown(_ context.Context) error {
	if summary := b.Summary(); summary != "" && b.logger != nil {
		b.logger.Info(summary)
	}

	b.mu.Lock()
	b.steps = 0
	b.mu.Unlock()
	return nil
}

// ForceFlush is a no-op; nothing is buffered.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}
