// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// stderrTailSize bounds the stderr kept for error reports.
const stderrTailSize = 4096

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Output runs args in dir and returns what the program wrote to stdout.
// Stderr goes to the vertex in ctx, or to the logger as warnings when there is none.
func (e *Executor) Output(ctx context.Context, dir string, args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // commands come from the project toolchain
	cmd.Dir = dir

	var stdout bytes.Buffer
	tail := &tailBuffer{limit: stderrTailSize}
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(e.stderrSink(ctx), tail)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		failure := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "command", args[0])
		failure = zerr.With(failure, "exit_code", exitCode)
		if dir != "" {
			failure = zerr.With(failure, "dir", dir)
		}
		if msg := strings.TrimSpace(tail.String()); msg != "" {
			failure = zerr.With(failure, "stderr", msg)
		}
		return nil, failure
	}

	return stdout.Bytes(), nil
}

func (e *Executor) stderrSink(ctx context.Context) io.Writer {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return v.Stderr()
	}
	return &logWriter{logger: e.logger}
}

// logWriter forwards complete lines to the logger as warnings.
type logWriter struct {
	logger  ports.Logger
	mu      sync.Mutex
	pending []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		if line := string(w.pending[:i]); line != "" {
			w.logger.Warn(line)
		}
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
