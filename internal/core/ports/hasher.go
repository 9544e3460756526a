package ports

import "go.trai.ch/cuv/internal/core/domain"

// Hasher defines the interface for computing cache keys.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash returns the content hash of the file at path.
	ComputeFileHash(path string) (uint64, error)
	// ComputePlanKey returns a key identifying the resolution of doc with the
	// given external modules and dangling policy.
	ComputePlanKey(doc *domain.ScanDocument, externals domain.ExternalModuleSet, allowUnresolved bool) (string, error)
}
