package ports

import "go.trai.ch/cuv/internal/core/domain"

// PlanStore defines the interface for caching resolved plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PlanStore interface {
	// Get retrieves the plan stored under key in dir.
	// Returns nil, nil if not found.
	Get(dir, key string) (*domain.PlanInfo, error)

	// Put stores the plan in dir.
	Put(dir string, info domain.PlanInfo) error
}
