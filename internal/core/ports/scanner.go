package ports

import (
	"context"

	"go.trai.ch/cuv/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks

// DependencyScanner asks an external scanner which modules each compile command provides and requires.
type DependencyScanner interface {
	// Scan runs scanner for every command and returns the merged document.
	// Rules appear in the order of cmds.
	Scan(ctx context.Context, scanner string, cmds []domain.CompileCommand) (*domain.ScanDocument, error)
}

// ScanStore reads and writes P1689 scan documents.
type ScanStore interface {
	// Load reads and validates the document at path.
	Load(path string) (*domain.ScanDocument, error)
	// Save writes doc to path.
	Save(path string, doc *domain.ScanDocument) error
}
