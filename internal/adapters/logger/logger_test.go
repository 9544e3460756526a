package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/adapters/logger"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger sets NO_COLOR so golden output carries no escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func unresolvedErr() error {
	err := zerr.Wrap(domain.ErrUnresolvedModule, "no rule provides module")
	err = zerr.With(err, "module", "fmt")
	return zerr.With(err, "required_by", []string{"main.o"})
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple warning", msg: "some warning", goldenName: "warn_basic"},
		{name: "empty warning", msg: "", goldenName: "warn_empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Warn(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{name: "standard error", err: errors.New("boom"), goldenName: "error_standard"},
		{name: "zerr chain with metadata", err: unresolvedErr(), goldenName: "error_chain"},
		{
			name:       "foreign cause ends chain",
			err:        zerr.Wrap(errors.New("exit status 1"), "dependency scanner failed"),
			goldenName: "error_foreign_cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(unresolvedErr())

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "no rule provides module: unresolved module", record["error"])
	assert.Equal(t, "fmt", record["module"])
	assert.Equal(t, []any{"main.o"}, record["required_by"])
}

func TestLogger_JSONInfo(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("plan written")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "plan written", record["msg"])
}

func TestLogger_SetOutputNilFallsBackToStderr(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetOutput(nil)
	lg.Info("to stderr")
	assert.Empty(t, buf.String())
}
