package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuv/internal/core/domain"
)

func TestNode(t *testing.T) {
	file := domain.FileNode("M.o")
	module := domain.ModuleNode("M:part")

	assert.True(t, file.IsFile())
	assert.False(t, file.IsModule())
	assert.Equal(t, domain.NodeKindFile, file.Kind())
	assert.Equal(t, "file:M.o", file.String())

	assert.True(t, module.IsModule())
	assert.Equal(t, "M:part", module.Name().String())
	assert.Equal(t, "module:M:part", module.String())

	assert.Equal(t, domain.FileNode("M.o"), file)
	assert.NotEqual(t, domain.FileNode("M"), domain.ModuleNode("M"))
	assert.Equal(t, "unknown", domain.NodeKind(0).String())
}
