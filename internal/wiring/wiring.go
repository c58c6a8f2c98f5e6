// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/trafficlens/internal/adapters/config"
	_ "go.trai.ch/trafficlens/internal/adapters/fs"
	_ "go.trai.ch/trafficlens/internal/adapters/graphfile"
	_ "go.trai.ch/trafficlens/internal/adapters/logger"
	_ "go.trai.ch/trafficlens/internal/adapters/metrics"
	_ "go.trai.ch/trafficlens/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/trafficlens/internal/app"
	_ "go.trai.ch/trafficlens/internal/engine/assets"
	_ "go.trai.ch/trafficlens/internal/engine/particles"
)
