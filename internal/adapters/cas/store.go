// Package cas implements the content-addressed plan cache.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlanStore = (*Store)(nil)

// Store implements ports.PlanStore using one JSON file per plan key.
type Store struct{}

// NewStore creates a new PlanStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the plan stored under key in dir. A missing plan, or a file
// recorded under a different key, is a cache miss.
func (s *Store) Get(dir, key string) (*domain.PlanInfo, error) {
	filename := s.getFilename(dir, key)
	//nolint:gosec // Path is constructed from the build directory and a sanitized key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", filename)
	}

	var info domain.PlanInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", filename)
	}
	if info.Key != key {
		return nil, nil
	}

	return &info, nil
}

// Put stores the plan in dir, replacing any plan with the same key.
func (s *Store) Put(dir string, info domain.PlanInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "dir", dir)
	}

	filename := s.getFilename(dir, info.Key)
	if err := writeFileAtomic(filename, data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", filename)
	}
	return nil
}

// getFilename keeps hex keys readable and hashes anything else into a safe name.
func (s *Store) getFilename(dir, key string) string {
	name := key
	if name == "" || strings.Trim(name, "0123456789abcdef") != "" {
		hash := sha256.Sum256([]byte(key))
		name = hex.EncodeToString(hash[:])
	}
	return filepath.Join(dir, name+".json")
}

// writeFileAtomic writes through a temporary file so readers never see a partial plan.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
