// Package fs provides file system adapters for globbing and hashing.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker matches glob patterns against the file system.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Glob yields every regular file below base matching the doublestar pattern
// (slash separated, relative to base). Files inside VCS metadata, or with any
// path element matching one of ignores, are skipped. Yielded paths include base.
func (w *Walker) Glob(base, pattern string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := doublestar.GlobWalk(os.DirFS(base), pattern, func(p string, _ fs.DirEntry) error {
			if w.skipped(p, ignores) {
				return nil
			}
			if !yield(filepath.Join(base, filepath.FromSlash(p)), nil) {
				return fs.SkipAll
			}
			return nil
		}, doublestar.WithFilesOnly())
		if err != nil && !errors.Is(err, fs.SkipAll) {
			yield("", err)
		}
	}
}

// skipped reports whether any element of the slash separated path p is
// excluded.
func (w *Walker) skipped(p string, ignores []string) bool {
	for elem := range strings.SplitSeq(p, "/") {
		if elem == ".git" || elem == ".jj" {
			return true
		}
		for _, ignore := range ignores {
			if matched, _ := doublestar.Match(ignore, elem); matched {
				return true
			}
		}
	}
	return false
}
