package layout

import (
	"math"
	"sync"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

const (
	// MinZoom is the smallest zoom level the viewport allows.
	MinZoom = 0.1
	// ZoomStep is the zoom change per step.
	ZoomStep = 0.25
	// FitPadding is the margin in pixels kept around fitted elements.
	FitPadding = 30
	// nodeExtent is the half size of a node including its label.
	nodeExtent = 30
)

var _ ports.Viewport = (*Viewport)(nil)

// Viewport holds the pan and zoom of the view. It is safe for concurrent use.
type Viewport struct {
	mu         sync.RWMutex
	pan        domain.Point
	zoom       float64
	pixelRatio float64
	width      float64
	height     float64
}

// NewViewport creates a viewport of the given size in CSS pixels.
func NewViewport(width, height int, pixelRatio float64) *Viewport {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Viewport{
		zoom:       1,
		pixelRatio: pixelRatio,
		width:      float64(width),
		height:     float64(height),
	}
}

// Transform implements ports.Viewport.
func (v *Viewport) Transform() domain.Transform {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return domain.Transform{Pan: v.pan, Zoom: v.zoom, PixelRatio: v.pixelRatio}
}

// Zoom changes the zoom level by steps (negative zooms out) around the
// centre of the view.
func (v *Viewport) Zoom(steps float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	next := math.Max(MinZoom, v.zoom+ZoomStep*steps)
	cx, cy := v.width/2, v.height/2
	// Keep the model point under the centre fixed.
	mx, my := (cx-v.pan.X)/v.zoom, (cy-v.pan.Y)/v.zoom
	v.pan = domain.Point{X: cx - mx*next, Y: cy - my*next}
	v.zoom = next
}

// Pan moves the view by the given CSS pixel offset.
func (v *Viewport) Pan(dx, dy float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pan = v.pan.Add(domain.Point{X: dx, Y: dy})
}

// Resize changes the view size in CSS pixels.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = float64(width), float64(height)
}

// Fit zooms and pans so that the given nodes fill the view with padding. With
// no IDs, or none present, every node is fitted.
func (v *Viewport) Fit(g *domain.Graph, ids []string) {
	box, ok := bounds(g, ids)
	if !ok {
		box, ok = bounds(g, nil)
	}
	if !ok {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	availW := math.Max(1, v.width-2*FitPadding)
	availH := math.Max(1, v.height-2*FitPadding)
	zoom := math.Min(availW/math.Max(box.Width, 1), availH/math.Max(box.Height, 1))
	zoom = math.Max(MinZoom, zoom)

	cx, cy := box.X+box.Width/2, box.Y+box.Height/2
	v.zoom = zoom
	v.pan = domain.Point{X: v.width/2 - cx*zoom, Y: v.height/2 - cy*zoom}
}

func bounds(g *domain.Graph, ids []string) (domain.Rect, bool) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for n := range g.Nodes() {
		if len(want) > 0 && !want[n.ID] {
			continue
		}
		found = true
		minX = math.Min(minX, n.Position.X-nodeExtent)
		minY = math.Min(minY, n.Position.Y-nodeExtent)
		maxX = math.Max(maxX, n.Position.X+nodeExtent)
		maxY = math.Max(maxY, n.Position.Y+nodeExtent)
	}
	if !found {
		return domain.Rect{}, false
	}
	return domain.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
