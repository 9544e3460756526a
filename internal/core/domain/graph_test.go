package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/core/domain"
)

func TestGraph_AddEdge(t *testing.T) {
	g := domain.NewGraph()
	user := domain.FileNode("User.o")
	m := domain.ModuleNode("M")

	g.AddEdge(user, m)
	g.AddEdge(user, m)

	require.True(t, g.Has(user))
	require.True(t, g.Has(m))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []domain.Node{m}, g.Dependencies(user))
	assert.Equal(t, []domain.Node{user}, g.Dependents(m))
	assert.True(t, g.HasEdge(user, m))
	assert.False(t, g.HasEdge(m, user))
}

func TestGraph_AddNodeKeepsExistingEdges(t *testing.T) {
	g := domain.NewGraph()
	a := domain.FileNode("a.o")
	b := domain.FileNode("b.o")

	g.AddEdge(a, b)
	g.AddNode(a)

	assert.Equal(t, []domain.Node{b}, g.Dependencies(a))
}

func TestGraph_FileAndModuleWithSameNameAreDistinct(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode(domain.FileNode("M"))
	g.AddNode(domain.ModuleNode("M"))

	assert.Equal(t, 2, g.Len())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := domain.NewGraph()
	a := domain.FileNode("a.o")
	b := domain.FileNode("b.o")
	g.AddEdge(a, b)

	g.RemoveEdge(a, b)
	g.RemoveEdge(a, domain.FileNode("missing.o"))

	assert.Empty(t, g.Dependencies(a))
	assert.Empty(t, g.Dependents(b))
	assert.Equal(t, 2, g.Len())
}

func TestGraph_RemoveNode(t *testing.T) {
	g := domain.NewGraph()
	impl := domain.FileNode("Impl.o")
	m := domain.ModuleNode("M")
	mo := domain.FileNode("M.o")
	g.AddEdge(impl, m)
	g.AddEdge(m, mo)

	g.RemoveNode(m)

	assert.False(t, g.Has(m))
	assert.Empty(t, g.Dependencies(impl))
	assert.Empty(t, g.Dependents(mo))
	assert.Equal(t, []domain.Node{impl, mo}, slices.Collect(g.Nodes()))

	// Removing an absent node is a no-op.
	g.RemoveNode(m)
	assert.Equal(t, 2, g.Len())
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := domain.NewGraph()
	names := []string{"z.o", "a.o", "m.o"}
	for _, n := range names {
		g.AddNode(domain.FileNode(n))
	}
	root := domain.FileNode("z.o")
	g.AddEdge(root, domain.FileNode("m.o"))
	g.AddEdge(root, domain.FileNode("a.o"))

	var got []string
	for n := range g.Nodes() {
		got = append(got, n.Name().String())
	}
	assert.Equal(t, names, got)
	assert.Equal(t, []domain.Node{domain.FileNode("m.o"), domain.FileNode("a.o")}, g.Dependencies(root))
	assert.Equal(t, 2, g.OutDegree(root))
	assert.Equal(t, 0, g.OutDegree(domain.FileNode("unknown.o")))
}

func TestGraph_DependenciesAreCopies(t *testing.T) {
	g := domain.NewGraph()
	a := domain.FileNode("a.o")
	g.AddEdge(a, domain.FileNode("b.o"))

	deps := g.Dependencies(a)
	deps[0] = domain.FileNode("c.o")

	assert.Equal(t, []domain.Node{domain.FileNode("b.o")}, g.Dependencies(a))
	assert.Nil(t, g.Dependencies(domain.FileNode("missing.o")))
}
