package app

import (
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
)

// Tracing toggles span logging at runtime.
type Tracing interface {
	SetEnabled(enabled bool)
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
	Tracing  Tracing
}
