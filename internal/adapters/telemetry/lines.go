// Package telemetry provides adapters for recording units of work.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultLineBufferSize is the buffered size that triggers an early flush.
	DefaultLineBufferSize = 4096
	// DefaultLineDelay bounds how long a complete line waits before it is emitted.
	DefaultLineDelay = 50 * time.Millisecond
)

var errLineBufferClosed = errors.New("line buffer is closed")

// LineBuffer collects tool output and hands it to emit in whole lines.
// A partial trailing line stays buffered until it is completed or the
// buffer is closed. It is safe for concurrent use.
type LineBuffer struct {
	limit int
	delay time.Duration
	emit  func([]byte)

	mu     sync.Mutex
	buf    bytes.Buffer
	timer  *time.Timer
	closed bool
}

// NewLineBuffer returns a LineBuffer. Non-positive limit or delay select the defaults.
func NewLineBuffer(limit int, delay time.Duration, emit func([]byte)) *LineBuffer {
	if limit <= 0 {
		limit = DefaultLineBufferSize
	}
	if delay <= 0 {
		delay = DefaultLineDelay
	}
	return &LineBuffer{limit: limit, delay: delay, emit: emit}
}

func (b *LineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errLineBufferClosed
	}
	b.buf.Write(p)

	if b.buf.Len() >= b.limit {
		b.emitLinesLocked()
	}
	if b.timer == nil && bytes.IndexByte(b.buf.Bytes(), '\n') >= 0 {
		b.timer = time.AfterFunc(b.delay, b.onTimer)
	}
	return len(p), nil
}

// Close emits everything still buffered, including an unterminated last line.
func (b *LineBuffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if b.buf.Len() > 0 {
		b.send(bytes.Clone(b.buf.Bytes()))
		b.buf.Reset()
	}
	return nil
}

func (b *LineBuffer) onTimer() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.timer = nil
	if !b.closed {
		b.emitLinesLocked()
	}
}

// emitLinesLocked sends the buffer up to its last newline.
func (b *LineBuffer) emitLinesLocked() {
	data := b.buf.Bytes()
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return
	}
	b.send(bytes.Clone(data[:end+1]))
	b.buf.Next(end + 1)
}

func (b *LineBuffer) send(data []byte) {
	if b.emit != nil {
		b.emit(data)
	}
}
