package render

import (
	"time"

	"go.trai.ch/trafficlens/internal/core/domain"
)

// FrameState is the mutable bookkeeping the drawer carries from one frame to
// the next.
type FrameState struct {
	// LastRender is when the last frame was drawn.
	LastRender time.Time
	// Frames counts frames drawn since the last FPS tick.
	Frames int
	// FPS is the frame count of the last full second.
	FPS int
	// DashOffset animates the dashed baseline rings.
	DashOffset float64
	// Neighborhood is the selection neighbourhood of the last frame.
	Neighborhood domain.Neighborhood
}

// dashOffsetAt maps wall time onto the baseline dash animation.
func dashOffsetAt(now time.Time) float64 {
	ms := now.UnixMilli() % dashPeriod.Milliseconds()
	return float64(ms) / float64(dashStep.Milliseconds())
}
