package metrics

import "go.trai.ch/trafficlens/internal/core/ports"

var _ ports.RenderMetrics = Noop{}

// Noop discards every measurement.
type Noop struct{}

func (Noop) FrameRendered()               {}
func (Noop) FrameSkipped()                {}
func (Noop) ParticlesSpawned(string, int) {}
func (Noop) ParticlesRetired(int)         {}
func (Noop) ParticlesLive(int)            {}
func (Noop) AssetLoaded(string)           {}
