// Package layout places nodes and keeps the viewport transform. The circle
// layout stands in for a force-directed layout engine.
package layout

import (
	"cmp"
	"math"
	"slices"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

var _ ports.Layout = (*Circle)(nil)

// Circle places unplaced nodes evenly on a circle, internal nodes first, in
// ID order so the result is stable across refreshes.
type Circle struct {
	// Spacing is the arc length between neighbouring nodes.
	Spacing float64
	// MinRadius bounds the radius from below for small graphs.
	MinRadius float64
}

// NewCircle returns a circle layout with defaults suited to 30 unit nodes.
func NewCircle() *Circle {
	return &Circle{Spacing: 90, MinRadius: 120}
}

// Place assigns positions to nodes that have none; placed nodes keep theirs.
func (c *Circle) Place(g *domain.Graph) {
	var ids []string
	for n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	slices.SortFunc(ids, func(a, b string) int {
		na, _ := g.Node(a)
		nb, _ := g.Node(b)
		if na.Kind != nb.Kind {
			if na.Kind == domain.NodeInternal {
				return -1
			}
			return 1
		}
		return cmp.Compare(a, b)
	})

	n := len(ids)
	if n == 0 {
		return
	}
	radius := math.Max(c.MinRadius, c.Spacing*float64(n)/(2*math.Pi))
	for i, id := range ids {
		node, _ := g.Node(id)
		if node.Placed {
			continue
		}
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		g.SetPosition(id, domain.Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
}
