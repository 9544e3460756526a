package resolver

import (
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildGraph turns scanner rules into a graph of file and module nodes.
//
// Every rule contributes its output as a file node, even when it has no edges.
// A provided module gets the edge module -> file unless it is external, in
// which case it stays a leaf. A required module gets the edge file -> module.
// Two rules providing the same non-external module are rejected.
func BuildGraph(rules []domain.Rule, classifier *Classifier) (*domain.Graph, error) {
	g := domain.NewGraph()
	providers := make(map[string]string)

	for i := range rules {
		rule := &rules[i]
		file := domain.FileNode(rule.PrimaryOutput)
		g.AddNode(file)

		for _, p := range rule.Provides {
			if classifier.IsExternal(p.LogicalName) {
				g.AddNode(domain.ModuleNode(p.LogicalName))
				continue
			}
			if first, ok := providers[p.LogicalName]; ok && first != rule.PrimaryOutput {
				err := zerr.With(zerr.Wrap(domain.ErrDuplicateProvider, "ambiguous module"), "module", p.LogicalName)
				return nil, zerr.With(err, "providers", []string{first, rule.PrimaryOutput})
			}
			providers[p.LogicalName] = rule.PrimaryOutput
			g.AddEdge(domain.ModuleNode(p.LogicalName), file)
		}
	}

	for i := range rules {
		file := domain.FileNode(rules[i].PrimaryOutput)
		for _, r := range rules[i].Requires {
			g.AddEdge(file, domain.ModuleNode(r.LogicalName))
		}
	}

	return g, nil
}
