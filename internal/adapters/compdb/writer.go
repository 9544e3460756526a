// Package compdb writes the JSON compilation database.
package compdb

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompileDatabase = (*Writer)(nil)

// Writer implements ports.CompileDatabase.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores cmds at path as a compile_commands.json array.
func (w *Writer) Write(path string, cmds []domain.CompileCommand) error {
	if cmds == nil {
		cmds = []domain.CompileCommand{}
	}

	data, err := json.MarshalIndent(cmds, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrCompileDBWriteFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCompileDBWriteFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the build directory
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCompileDBWriteFailed, err.Error()), "path", path)
	}
	return nil
}
