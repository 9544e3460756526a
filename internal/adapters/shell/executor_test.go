package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/adapters/shell"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/cuv/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Output(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	out, err := executor.Output(context.Background(), t.TempDir(), []string{"sh", "-c", "printf '{\"rules\":[]}'"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rules":[]}`, string(out))
}

func TestExecutor_Output_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	out, err := executor.Output(context.Background(), dir, []string{"pwd"})
	require.NoError(t, err)
	assert.Contains(t, string(out), dir)
}

func TestExecutor_Output_StderrToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(0)

	var stderr bytes.Buffer
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stderr().Return(&stderr).AnyTimes()

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	out, err := shell.NewExecutor(mockLogger).Output(ctx, "", []string{"sh", "-c", "echo out; echo warning: unused >&2"})
	require.NoError(t, err)

	assert.Equal(t, "out\n", string(out))
	assert.Equal(t, "warning: unused\n", stderr.String())
}

func TestExecutor_Output_StderrToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Warn("first"),
		mockLogger.EXPECT().Warn("second"),
	)

	_, err := shell.NewExecutor(mockLogger).Output(context.Background(), "", []string{"sh", "-c", "printf 'first\\nsec' >&2; printf 'ond\\n' >&2"})
	require.NoError(t, err)
}

func TestExecutor_Output_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	_, err := shell.NewExecutor(mockLogger).Output(context.Background(), "", []string{"sh", "-c", "echo 'fatal error: module not found' >&2; exit 3"})
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "sh", meta["command"])
	assert.Equal(t, "fatal error: module not found", meta["stderr"])
}

func TestExecutor_Output_MissingProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := shell.NewExecutor(mocks.NewMockLogger(ctrl)).Output(context.Background(), "", []string{"cuv-definitely-not-installed"})
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Output_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := shell.NewExecutor(mocks.NewMockLogger(ctrl)).Output(context.Background(), "", nil)
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}
