package scan_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/adapters/scan"
	"go.trai.ch/cuv/internal/adapters/telemetry"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func compileCommands() []domain.CompileCommand {
	return []domain.CompileCommand{
		{
			Directory: "/work",
			File:      "/work/src/M.cppm",
			Arguments: []string{"clang++", "/work/src/M.cppm", "-o", "/work/build/module_cache/M.pcm", "--precompile"},
			Output:    "/work/build/module_cache/M.pcm",
		},
		{
			Directory: "/work",
			File:      "/work/src/main.cpp",
			Arguments: []string{"clang++", "/work/src/main.cpp", "-o", "/work/build/objects/main.o", "-c"},
			Output:    "/work/build/objects/main.o",
		},
	}
}

func scanOutput(output string, provides, requires []string) []byte {
	rule := fmt.Sprintf(`{"primary-output": %q`, output)
	if len(provides) > 0 {
		rule += fmt.Sprintf(`, "provides": [{"logical-name": %q, "is-interface": true}]`, provides[0])
	}
	if len(requires) > 0 {
		rule += fmt.Sprintf(`, "requires": [{"logical-name": %q}]`, requires[0])
	}
	return []byte(`{"revision": 0, "version": 1, "rules": [` + rule + `}]}`)
}

func TestClangScanner_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	cmds := compileCommands()

	executor.EXPECT().
		Output(gomock.Any(), "/work", append([]string{"clang-scan-deps", "-format=p1689", "--"}, cmds[0].Arguments...)).
		Return(scanOutput(cmds[0].Output, []string{"M"}, nil), nil)
	executor.EXPECT().
		Output(gomock.Any(), "/work", append([]string{"clang-scan-deps", "-format=p1689", "--"}, cmds[1].Arguments...)).
		Return(scanOutput(cmds[1].Output, nil, []string{"M"}), nil)

	scanner := scan.NewClangScanner(executor, telemetry.NewNoOp())
	doc, err := scanner.Scan(context.Background(), "clang-scan-deps", cmds)
	require.NoError(t, err)

	require.Len(t, doc.Rules, 2)
	assert.Equal(t, domain.P1689Version, doc.Version)
	assert.Equal(t, cmds[0].Output, doc.Rules[0].PrimaryOutput)
	assert.Equal(t, "M", doc.Rules[0].Provides[0].LogicalName)
	assert.Equal(t, cmds[1].Output, doc.Rules[1].PrimaryOutput)
	assert.Equal(t, "M", doc.Rules[1].Requires[0].LogicalName)
}

func TestClangScanner_Scan_PreservesCommandOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	var cmds []domain.CompileCommand
	for i := range 16 {
		out := fmt.Sprintf("/work/build/objects/u%02d.o", i)
		cmds = append(cmds, domain.CompileCommand{
			Directory: "/work",
			File:      fmt.Sprintf("/work/src/u%02d.cpp", i),
			Arguments: []string{"clang++", "-o", out},
			Output:    out,
		})
	}

	executor.EXPECT().Output(gomock.Any(), "/work", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []string) ([]byte, error) {
			return scanOutput(args[len(args)-1], nil, nil), nil
		}).Times(len(cmds))

	doc, err := scan.NewClangScanner(executor, telemetry.NewNoOp()).WithLimit(4).
		Scan(context.Background(), "clang-scan-deps", cmds)
	require.NoError(t, err)

	for i, rule := range doc.Rules {
		assert.Equal(t, cmds[i].Output, rule.PrimaryOutput)
	}
}

func TestClangScanner_Scan_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var calls atomic.Int32

	executor.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []string) ([]byte, error) {
			calls.Add(1)
			return nil, zerr.Wrap(domain.ErrCommandFailed, "exit status 1")
		}).AnyTimes()

	_, err := scan.NewClangScanner(executor, telemetry.NewNoOp()).WithLimit(1).
		Scan(context.Background(), "clang-scan-deps", compileCommands())
	require.ErrorIs(t, err, domain.ErrScannerFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "/work/src/M.cppm", zErr.Metadata()["file"])
	assert.Equal(t, int32(1), calls.Load(), "a failed scan cancels the remaining ones")
}

func TestClangScanner_Scan_DuplicateOutputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(scanOutput("same.o", nil, nil), nil).Times(2)

	_, err := scan.NewClangScanner(executor, telemetry.NewNoOp()).
		Scan(context.Background(), "clang-scan-deps", compileCommands())
	require.ErrorIs(t, err, domain.ErrDuplicateRuleOutput)
}

func TestClangScanner_Scan_RecordsVertexPerCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	executor.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args []string) ([]byte, error) {
			return scanOutput(args[len(args)-2], nil, nil), nil
		}).Times(2)
	tel.EXPECT().Record(gomock.Any(), "scan M.cppm").Return(context.Background(), vertex)
	tel.EXPECT().Record(gomock.Any(), "scan main.cpp").Return(context.Background(), vertex)
	vertex.EXPECT().Complete(nil).Times(2)

	_, err := scan.NewClangScanner(executor, tel).WithLimit(1).
		Scan(context.Background(), "clang-scan-deps", compileCommands())
	require.NoError(t, err)
}
