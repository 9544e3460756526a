package compdb_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/adapters/compdb"
	"go.trai.ch/cuv/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", domain.CompileDBFileName)
	cmds := []domain.CompileCommand{{
		Directory: "/work",
		File:      "/work/src/main.cpp",
		Arguments: []string{"clang++", "-std=c++20", "-c", "/work/src/main.cpp", "-o", "/work/build/objects/main.o"},
		Output:    "/work/build/objects/main.o",
	}}

	require.NoError(t, compdb.NewWriter().Write(path, cmds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "/work", entries[0]["directory"])
	assert.Equal(t, "/work/src/main.cpp", entries[0]["file"])
	assert.Equal(t, "/work/build/objects/main.o", entries[0]["output"])
	assert.Len(t, entries[0]["arguments"], 6)
}

func TestWriter_WriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CompileDBFileName)

	require.NoError(t, compdb.NewWriter().Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriter_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	err := compdb.NewWriter().Write(filepath.Join(blocker, domain.CompileDBFileName), nil)
	require.ErrorIs(t, err, domain.ErrCompileDBWriteFailed)
}
