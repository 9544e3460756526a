package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/cuv/internal/core/domain"
)

// Vertex adapts a progrock vertex recorder to ports.Vertex. Structured logs
// share the stdout stream so the progress view can filter them by level.
type Vertex struct {
	rec *progrock.VertexRecorder
}

func (v *Vertex) Stdout() io.Writer { return v.rec.Stdout() }

func (v *Vertex) Stderr() io.Writer { return v.rec.Stderr() }

// Log writes msg as a "[LEVEL] msg" line.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintln(v.rec.Stdout(), domain.FormatLogLine(level, msg))
}

// Complete finishes the vertex, failed when err is non-nil.
func (v *Vertex) Complete(err error) { v.rec.Done(err) }

func (v *Vertex) Cached() { v.rec.Cached() }
