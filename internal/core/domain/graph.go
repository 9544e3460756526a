// Package domain contains the core domain models for the module-aware build planner.
package domain

import (
	"iter"
	"slices"
)

// nodeSet is an insertion-ordered set of nodes.
type nodeSet struct {
	index map[Node]struct{}
	items []Node
}

func newNodeSet() *nodeSet {
	return &nodeSet{index: make(map[Node]struct{})}
}

func (s *nodeSet) add(n Node) bool {
	if _, ok := s.index[n]; ok {
		return false
	}
	s.index[n] = struct{}{}
	s.items = append(s.items, n)
	return true
}

func (s *nodeSet) remove(n Node) bool {
	if _, ok := s.index[n]; !ok {
		return false
	}
	delete(s.index, n)
	s.items = slices.DeleteFunc(s.items, func(m Node) bool { return m == n })
	return true
}

func (s *nodeSet) has(n Node) bool {
	_, ok := s.index[n]
	return ok
}

// Graph is a directed graph over file and module nodes.
// An edge A -> B means A depends on B. The forward and reverse adjacency are
// always updated together. Node and adjacency iteration follow insertion order.
type Graph struct {
	order   []Node
	forward map[Node]*nodeSet
	reverse map[Node]*nodeSet
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		forward: make(map[Node]*nodeSet),
		reverse: make(map[Node]*nodeSet),
	}
}

// AddNode registers n with an empty dependency set if it is not present yet.
func (g *Graph) AddNode(n Node) {
	if _, exists := g.forward[n]; exists {
		return
	}
	g.order = append(g.order, n)
	g.forward[n] = newNodeSet()
	g.reverse[n] = newNodeSet()
}

// AddEdge records that from depends on to. Both nodes are added if missing.
// Adding an existing edge is a no-op.
func (g *Graph) AddEdge(from, to Node) {
	g.AddNode(from)
	g.AddNode(to)
	g.forward[from].add(to)
	g.reverse[to].add(from)
}

// RemoveEdge deletes the edge from -> to if it exists.
func (g *Graph) RemoveEdge(from, to Node) {
	if deps, ok := g.forward[from]; ok {
		deps.remove(to)
	}
	if dependents, ok := g.reverse[to]; ok {
		dependents.remove(from)
	}
}

// RemoveNode deletes n and every edge incident to it.
func (g *Graph) RemoveNode(n Node) {
	deps, ok := g.forward[n]
	if !ok {
		return
	}
	for _, d := range deps.items {
		g.reverse[d].remove(n)
	}
	for _, d := range g.reverse[n].items {
		g.forward[d].remove(n)
	}
	delete(g.forward, n)
	delete(g.reverse, n)
	g.order = slices.DeleteFunc(g.order, func(m Node) bool { return m == n })
}

// Has reports whether n is a node of the graph.
func (g *Graph) Has(n Node) bool {
	_, ok := g.forward[n]
	return ok
}

// HasEdge reports whether from depends on to.
func (g *Graph) HasEdge(from, to Node) bool {
	deps, ok := g.forward[from]
	return ok && deps.has(to)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns an iterator over all nodes in insertion order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// Dependencies returns a copy of the nodes n depends on, in insertion order.
func (g *Graph) Dependencies(n Node) []Node {
	deps, ok := g.forward[n]
	if !ok {
		return nil
	}
	return slices.Clone(deps.items)
}

// Dependents returns a copy of the nodes depending on n, in insertion order.
func (g *Graph) Dependents(n Node) []Node {
	dependents, ok := g.reverse[n]
	if !ok {
		return nil
	}
	return slices.Clone(dependents.items)
}

// OutDegree returns the number of nodes n depends on.
func (g *Graph) OutDegree(n Node) int {
	deps, ok := g.forward[n]
	if !ok {
		return 0
	}
	return len(deps.items)
}
