package resolver

import (
	"strings"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
)

// SortTopologically orders g so that every node follows all of its dependencies.
//
// It uses Kahn's algorithm with a FIFO queue seeded in insertion order, so the
// result only depends on the order nodes and edges were added. If some nodes
// can never be placed, it returns domain.ErrCycleDetected with the unplaced
// nodes and one concrete cycle attached as metadata.
func SortTopologically(g *domain.Graph) ([]domain.Node, error) {
	inDegree := make(map[domain.Node]int, g.Len())
	queue := make([]domain.Node, 0, g.Len())
	for n := range g.Nodes() {
		inDegree[n] = g.OutDegree(n)
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]domain.Node, 0, g.Len())
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, dependent := range g.Dependents(n) {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(order) != g.Len() {
		return nil, cycleError(g, inDegree)
	}
	return order, nil
}

// cycleError reports the nodes left with unmet dependencies and walks them
// depth-first to extract one cycle.
func cycleError(g *domain.Graph, inDegree map[domain.Node]int) error {
	var remaining []domain.Node
	for n := range g.Nodes() {
		if inDegree[n] > 0 {
			remaining = append(remaining, n)
		}
	}

	names := nodeNames(remaining)
	msg := "cannot order build tasks " + strings.Join(names, ", ")
	err := zerr.With(zerr.Wrap(domain.ErrCycleDetected, msg), "unresolved", names)
	if cycle := findCycle(g, remaining, inDegree); cycle != "" {
		err = zerr.With(err, "cycle", cycle)
	}
	return err
}

func findCycle(g *domain.Graph, remaining []domain.Node, inDegree map[domain.Node]int) string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[domain.Node]int, len(remaining))
	var path []domain.Node

	var visit func(n domain.Node) string
	visit = func(n domain.Node) string {
		state[n] = visiting
		path = append(path, n)
		for _, dep := range g.Dependencies(n) {
			if inDegree[dep] == 0 {
				continue
			}
			switch state[dep] {
			case visiting:
				return formatCycle(path, dep)
			case unvisited:
				if c := visit(dep); c != "" {
					return c
				}
			}
		}
		state[n] = done
		path = path[:len(path)-1]
		return ""
	}

	for _, n := range remaining {
		if state[n] == unvisited {
			if c := visit(n); c != "" {
				return c
			}
		}
	}
	return ""
}

func formatCycle(path []domain.Node, back domain.Node) string {
	start := 0
	for i, n := range path {
		if n == back {
			start = i
			break
		}
	}
	var b strings.Builder
	for _, n := range path[start:] {
		b.WriteString(n.Name().String())
		b.WriteString(" -> ")
	}
	b.WriteString(back.Name().String())
	return b.String()
}
