package ports

import "go.trai.ch/cuv/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks

// CompileDatabase writes compile_commands.json.
type CompileDatabase interface {
	Write(path string, cmds []domain.CompileCommand) error
}

// BuildFileWriter writes the build file consumed by the external executor.
type BuildFileWriter interface {
	Write(path string, plan *domain.BuildPlan) error
}
