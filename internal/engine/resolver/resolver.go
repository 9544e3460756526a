// Package resolver turns scanner module descriptions into an ordered list of build tasks.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
)

// Options controls a single resolution.
type Options struct {
	// AllowUnresolved drops required modules that nothing provides instead of failing.
	AllowUnresolved bool
}

func (o Options) policy() DanglingPolicy {
	if o.AllowUnresolved {
		return DanglingDrop
	}
	return DanglingFail
}

// Resolution is the result of resolving a rule list.
type Resolution struct {
	// Tasks are in build order: a task never depends on a later one.
	Tasks []domain.Task
	// Unresolved lists dropped requirements when Options.AllowUnresolved is set.
	Unresolved []domain.UnresolvedModule
}

// Resolver runs the resolution pipeline and records each stage.
type Resolver struct {
	telemetry ports.Telemetry
}

// New creates a Resolver reporting stages to telemetry.
func New(telemetry ports.Telemetry) *Resolver {
	return &Resolver{telemetry: telemetry}
}

// Resolve orders the outputs of rules so that every output follows the
// outputs providing the modules it imports.
//
// externals is merged with domain.DefaultExternalModules. Resolve keeps no
// state between calls; the graph it builds is discarded on return.
func (r *Resolver) Resolve(
	ctx context.Context,
	rules []domain.Rule,
	externals domain.ExternalModuleSet,
	opts Options,
) (*Resolution, error) {
	classifier := NewClassifier(domain.DefaultExternalModules().Union(externals))

	var g *domain.Graph
	err := r.stage(ctx, "resolve: build module graph", func(v ports.Vertex) error {
		var err error
		g, err = BuildGraph(rules, classifier)
		if err == nil {
			v.Log(domain.LogLevelDebug, fmt.Sprintf("%d rules, %d nodes", len(rules), g.Len()))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	var unresolved []domain.UnresolvedModule
	err = r.stage(ctx, "resolve: eliminate modules", func(v ports.Vertex) error {
		var err error
		unresolved, err = EliminateModules(g, classifier, opts.policy())
		for _, u := range unresolved {
			v.Log(domain.LogLevelWarn, fmt.Sprintf("dropped unresolved module %s", u.Module))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	var order []domain.Node
	err = r.stage(ctx, "resolve: sort tasks", func(_ ports.Vertex) error {
		var err error
		order, err = SortTopologically(g)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Tasks:      EmitTasks(g, order),
		Unresolved: unresolved,
	}, nil
}

func (r *Resolver) stage(ctx context.Context, name string, fn func(ports.Vertex) error) error {
	_, vertex := r.telemetry.Record(ctx, name, ports.WithInternal())
	err := fn(vertex)
	vertex.Complete(err)
	return err
}
