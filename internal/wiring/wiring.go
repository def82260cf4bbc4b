// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cloister/internal/adapters/binfmt"
	_ "go.trai.ch/cloister/internal/adapters/config"
	_ "go.trai.ch/cloister/internal/adapters/logger"
	_ "go.trai.ch/cloister/internal/adapters/shell"
	_ "go.trai.ch/cloister/internal/adapters/state"
	_ "go.trai.ch/cloister/internal/adapters/telemetry"
	_ "go.trai.ch/cloister/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/cloister/internal/adapters/wine"
	_ "go.trai.ch/cloister/internal/adapters/xrandr"
	// Register app and engine nodes.
	_ "go.trai.ch/cloister/internal/app"
	_ "go.trai.ch/cloister/internal/engine/display"
)
