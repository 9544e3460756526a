package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cuv/internal/app"
	"go.trai.ch/cuv/internal/core/ports"
	_ "go.trai.ch/cuv/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid has a limitation/bug where it infers the dependency ID
	// from the package name of the interface used in Dep[T].
	// Since we use `ports.Executor`, `ports.Logger`, etc., it expects a dependency named "ports".
	// This makes it incompatible with our architecture where multiple distinct nodes
	// implement interfaces from the same `ports` package.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestWiring_ResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = components.Telemetry.Close()
	})

	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NotNil(t, components.Telemetry)
	assert.NotNil(t, components.Progress)
}

func TestWiring_TelemetrySpansRecord(t *testing.T) {
	tel, _, err := graft.ExecuteFor[ports.Telemetry](context.Background(), graft.WithCache(graft.NewMemoryCache()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tel.Close()
	})

	ctx, vertex := tel.Record(context.Background(), "expand sources")
	defer vertex.Complete(nil)

	assert.True(t, trace.SpanFromContext(ctx).IsRecording())

	_, global := otel.Tracer("check").Start(context.Background(), "global")
	defer global.End()
	assert.True(t, global.IsRecording())
}
