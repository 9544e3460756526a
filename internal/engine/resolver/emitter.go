package resolver

import "go.trai.ch/cuv/internal/core/domain"

// EmitTasks projects a topological order onto tasks carrying each node's
// direct dependencies.
func EmitTasks(g *domain.Graph, order []domain.Node) []domain.Task {
	tasks := make([]domain.Task, 0, len(order))
	for _, n := range order {
		deps := g.Dependencies(n)
		task := domain.Task{
			Name:         n.Name(),
			Dependencies: make([]domain.InternedString, len(deps)),
		}
		for i, d := range deps {
			task.Dependencies[i] = d.Name()
		}
		tasks = append(tasks, task)
	}
	return tasks
}
