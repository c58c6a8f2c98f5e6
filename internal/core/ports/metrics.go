package ports

// RenderMetrics receives counters from the render loop, the particle engine and
// the asset cache.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type RenderMetrics interface {
	// FrameRendered counts a frame that was drawn.
	FrameRendered()
	// FrameSkipped counts a frame elided by the frame gate.
	FrameSkipped()
	// ParticlesSpawned counts new particles of the given class.
	ParticlesSpawned(class string, n int)
	// ParticlesRetired counts particles removed after expiring.
	ParticlesRetired(n int)
	// ParticlesLive reports the current particle population.
	ParticlesLive(n int)
	// AssetLoaded counts a finished asset load with outcome "ok" or "error".
	AssetLoaded(outcome string)
}
