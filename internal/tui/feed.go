package tui

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var (
	_ progrock.Writer = (*Feed)(nil)
	_ TapeSource      = (*Feed)(nil)
)

// Feed is a progrock writer that queues status updates for a single reader.
// Updates written before Open are discarded so an unobserved feed holds no memory.
type Feed struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []*progrock.StatusUpdate
	open    bool
	closed  bool
	closeFn sync.Once
}

// NewFeed creates an idle feed.
func NewFeed() *Feed {
	f := &Feed{}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Open starts queueing updates.
func (f *Feed) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// WriteStatus queues update if the feed is open.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.open || f.closed {
		return nil
	}
	f.queue = append(f.queue, update)
	f.cond.Signal()
	return nil
}

// Read returns the next queued update, blocking until one arrives.
// Once the feed is closed and drained it returns io.EOF.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.queue) == 0 && !f.closed {
		f.cond.Wait()
	}
	if len(f.queue) == 0 {
		return nil, io.EOF
	}

	update := f.queue[0]
	f.queue[0] = nil
	f.queue = f.queue[1:]
	return update, nil
}

// Close ends the stream. Pending updates can still be read.
func (f *Feed) Close() error {
	f.closeFn.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.mu.Unlock()
		f.cond.Broadcast()
	})
	return nil
}
