package app

import (
	"go.trai.ch/trafficlens/internal/adapters/metrics"
	"go.trai.ch/trafficlens/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Metrics *metrics.Registry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, reg *metrics.Registry) *Components {
	return &Components{
		App:     app,
		Logger:  logger,
		Metrics: reg,
	}
}

// Close releases the resources held by the application.
func (c *Components) Close() {
	c.App.Close()
}
