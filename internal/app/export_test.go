package app

import "go.trai.ch/cuv/internal/core/ports"

// ContentChanged exposes the watch loop's content tracker for tests.
func ContentChanged(hasher ports.Hasher) func(paths []string) bool {
	return newContentTracker(hasher).changed
}

// IsWatchedFile exposes the watch event filter for tests.
var IsWatchedFile = isWatchedFile
