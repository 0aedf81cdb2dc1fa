// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dist/internal/adapters/config"
	_ "go.trai.ch/dist/internal/adapters/fetch"
	_ "go.trai.ch/dist/internal/adapters/fs"
	_ "go.trai.ch/dist/internal/adapters/lock"
	_ "go.trai.ch/dist/internal/adapters/logger"
	_ "go.trai.ch/dist/internal/adapters/manifest"
	_ "go.trai.ch/dist/internal/adapters/state"
	_ "go.trai.ch/dist/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/dist/internal/app"
	_ "go.trai.ch/dist/internal/engine/activator"
	_ "go.trai.ch/dist/internal/engine/active"
	_ "go.trai.ch/dist/internal/engine/registry"
	_ "go.trai.ch/dist/internal/engine/resolver"
)
