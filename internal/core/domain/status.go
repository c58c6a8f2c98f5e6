package domain

// LoopStatus is the once-per-second report of the render loop.
type LoopStatus struct {
	FPS       int
	Particles int
	Nodes     int
	Edges     int
	// Rendered and Skipped count frames since the loop started.
	Rendered int
	Skipped  int
	Animate  bool
	Zoom     float64
}
