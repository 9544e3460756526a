// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Output runs args[0] with the remaining arguments in dir and returns its standard output.
	//
	// Standard error is forwarded to the vertex in ctx if there is one.
	// It returns an error wrapping domain.ErrCommandFailed if the program exits non-zero.
	Output(ctx context.Context, dir string, args []string) ([]byte, error)
}
