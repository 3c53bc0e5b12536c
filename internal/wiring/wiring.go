// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rjs/internal/adapters/cas"
	_ "go.trai.ch/rjs/internal/adapters/config"
	_ "go.trai.ch/rjs/internal/adapters/fs"
	_ "go.trai.ch/rjs/internal/adapters/logger"
	_ "go.trai.ch/rjs/internal/adapters/registry"
	_ "go.trai.ch/rjs/internal/adapters/rjs"
	_ "go.trai.ch/rjs/internal/adapters/shell"
	_ "go.trai.ch/rjs/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rjs/internal/app"
	_ "go.trai.ch/rjs/internal/engine/dist"
)
