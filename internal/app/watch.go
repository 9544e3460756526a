package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/cuv/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the watcher adapter
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watch runs Generate and then regenerates whenever the project file or a
// compilable source below the project root changes content. Generation errors
// are logged and watching continues. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts Options, window time.Duration) error {
	project, err := a.deps.Loader.Load(opts.Cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	tracker := newContentTracker(a.deps.Hasher)
	a.regenerate(ctx, opts, tracker)

	if err := a.deps.Watcher.Start(ctx, project.Root); err != nil {
		return err
	}
	defer func() {
		_ = a.deps.Watcher.Stop()
	}()

	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		if tracker.changed(paths) {
			select {
			case trigger <- struct{}{}:
			default:
			}
		}
	})

	go func() {
		for event := range a.deps.Watcher.Events() {
			if isWatchedFile(event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.deps.Logger.Info("watching " + project.Root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.deps.Logger.Info("change detected, regenerating")
			a.regenerate(ctx, opts, tracker)
		}
	}
}

func (a *App) regenerate(ctx context.Context, opts Options, tracker *contentTracker) {
	res, err := a.Generate(ctx, opts)
	if err != nil {
		a.deps.Logger.Error(err)
		return
	}

	paths := make([]string, 0, len(res.Commands)+1)
	paths = append(paths, filepath.Join(res.Project.Root, domain.ProjectFileName))
	for _, cmd := range res.Commands {
		paths = append(paths, cmd.File)
	}
	tracker.changed(paths)
}

func isWatchedFile(path string) bool {
	return filepath.Base(path) == domain.ProjectFileName || domain.ClassifySource(path) != domain.SourceUnknown
}

// contentTracker remembers file hashes so that events which leave a file's
// content unchanged do not trigger a regeneration.
type contentTracker struct {
	mu     sync.Mutex
	hasher ports.Hasher
	hashes map[string]uint64
}

func newContentTracker(hasher ports.Hasher) *contentTracker {
	return &contentTracker{hasher: hasher, hashes: make(map[string]uint64)}
}

// changed records the current hashes of paths and reports whether any differs
// from the last recorded one. A file that cannot be read counts as changed if
// it was known before.
func (t *contentTracker) changed(paths []string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed := false
	for _, path := range paths {
		sum, err := t.hasher.ComputeFileHash(path)
		prev, known := t.hashes[path]
		switch {
		case err != nil:
			if known {
				delete(t.hashes, path)
				changed = true
			}
		case !known || prev != sum:
			t.hashes[path] = sum
			changed = true
		}
	}
	return changed
}
