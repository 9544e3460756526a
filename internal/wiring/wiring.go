// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cuv/internal/adapters/cas"
	_ "go.trai.ch/cuv/internal/adapters/compdb"
	_ "go.trai.ch/cuv/internal/adapters/config"
	_ "go.trai.ch/cuv/internal/adapters/fs"
	_ "go.trai.ch/cuv/internal/adapters/logger"
	_ "go.trai.ch/cuv/internal/adapters/ninja"
	_ "go.trai.ch/cuv/internal/adapters/scan"
	_ "go.trai.ch/cuv/internal/adapters/shell"
	_ "go.trai.ch/cuv/internal/adapters/telemetry"
	_ "go.trai.ch/cuv/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/cuv/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cuv/internal/app"
	_ "go.trai.ch/cuv/internal/engine/resolver"
	// Register the progress feed.
	_ "go.trai.ch/cuv/internal/tui"
)
