// Package scan reads, writes and produces P1689 dependency descriptions.
package scan

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScanStore = (*Store)(nil)

// Store implements ports.ScanStore on JSON files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the P1689 document at path and validates it.
func (s *Store) Load(path string) (*domain.ScanDocument, error) {
	//nolint:gosec // Path is provided by the user or derived from the build directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrScanReadFailed, err.Error()), "path", path)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Save writes doc to path as indented JSON, creating parent directories.
func (s *Store) Save(path string, doc *domain.ScanDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal scan document")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create scan directory"), "path", path)
	}

	//nolint:gosec // Path is derived from the build directory
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write scan document"), "path", path)
	}
	return nil
}

// Decode parses and validates a P1689 document.
func Decode(data []byte) (*domain.ScanDocument, error) {
	var doc domain.ScanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrScanParseFailed, err.Error())
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
