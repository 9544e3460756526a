package resolver

import "go.trai.ch/cuv/internal/core/domain"

// Classifier decides which logical modules are dependency-free leaves.
type Classifier struct {
	externals domain.ExternalModuleSet
}

// NewClassifier returns a classifier treating every member of externals as prebuilt.
func NewClassifier(externals domain.ExternalModuleSet) *Classifier {
	return &Classifier{externals: externals}
}

// IsExternal reports whether the module is built outside the project.
func (c *Classifier) IsExternal(logicalName string) bool {
	return c.externals.Contains(logicalName)
}
