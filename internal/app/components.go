package app

import (
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/cuv/internal/tui"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	// Progress receives telemetry updates for the --progress view.
	Progress *tui.Feed
}
