package resolver

import (
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
)

// DanglingPolicy selects what happens to a required module that nothing provides.
type DanglingPolicy int

const (
	// DanglingFail aborts resolution with domain.ErrUnresolvedModule.
	DanglingFail DanglingPolicy = iota
	// DanglingDrop removes the requirement and reports it to the caller.
	DanglingDrop
)

// EliminateModules contracts every consumer -> module -> provider path into
// a direct consumer -> provider edge and removes all module nodes.
//
// Module nodes are processed in insertion order. Requirements of external
// modules are dropped without being reported.
func EliminateModules(g *domain.Graph, classifier *Classifier, policy DanglingPolicy) ([]domain.UnresolvedModule, error) {
	var modules []domain.Node
	for n := range g.Nodes() {
		if n.IsModule() {
			modules = append(modules, n)
		}
	}

	var unresolved []domain.UnresolvedModule
	for _, m := range modules {
		consumers := g.Dependents(m)
		providers := g.Dependencies(m)

		name := m.Name().String()
		if len(providers) == 0 && len(consumers) > 0 && !classifier.IsExternal(name) {
			dangling := domain.UnresolvedModule{Module: name, RequiredBy: nodeNames(consumers)}
			if policy == DanglingFail {
				err := zerr.With(zerr.Wrap(domain.ErrUnresolvedModule, "no rule provides module"), "module", name)
				return nil, zerr.With(err, "required_by", dangling.RequiredBy)
			}
			unresolved = append(unresolved, dangling)
		}

		for _, consumer := range consumers {
			for _, provider := range providers {
				g.AddEdge(consumer, provider)
			}
		}
		g.RemoveNode(m)
	}

	return unresolved, nil
}

func nodeNames(nodes []domain.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name().String()
	}
	return out
}
