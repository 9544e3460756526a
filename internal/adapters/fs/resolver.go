package fs

import (
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements ports.SourceResolver with doublestar patterns
// ("**", "{a,b}", classes) expanded through the Walker.
type Resolver struct {
	walker  *Walker
	ignores []string
}

// NewResolver creates a new Resolver. Paths with an element matching one of
// ignores never resolve.
func NewResolver(walker *Walker, ignores ...string) *Resolver {
	return &Resolver{walker: walker, ignores: ignores}
}

// ResolveSources expands patterns relative to root. Every pattern must match
// at least one file.
func (r *Resolver) ResolveSources(patterns []string, root string) ([]string, error) {
	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := r.expand(pattern, root)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "pattern matched nothing"), "pattern", pattern)
		}
		for _, m := range matches {
			unique[m] = struct{}{}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		result = append(result, path)
	}
	slices.Sort(result)
	return result, nil
}

func (r *Resolver) expand(pattern, root string) ([]string, error) {
	slashed := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(slashed) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSourcePattern, "malformed glob"), "pattern", pattern)
	}

	// root is taken literally; only the pattern carries meta characters.
	base, rest := doublestar.SplitPattern(slashed)
	dir := filepath.FromSlash(base)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	var matches []string
	for path, err := range r.walker.Glob(dir, rest, r.ignores) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSourcePattern, err.Error()), "pattern", pattern)
		}
		matches = append(matches, path)
	}
	return matches, nil
}
