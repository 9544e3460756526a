package ports

import "go.trai.ch/cuv/internal/core/domain"

// ProjectLoader defines the interface for loading the project description.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load finds the project file at or above cwd and returns the validated project.
	Load(cwd string) (*domain.Project, error)
}
