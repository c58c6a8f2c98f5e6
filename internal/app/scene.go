package app

import (
	"sync/atomic"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

var _ ports.SceneSource = (*Scene)(nil)

// Scene holds the published graph snapshot. Readers on any goroutine see
// either the previous or the next snapshot, never a partial refresh.
type Scene struct {
	graph  atomic.Pointer[domain.Graph]
	layout ports.Layout
}

// NewScene creates an empty scene; published graphs are placed by layout.
func NewScene(layout ports.Layout) *Scene {
	return &Scene{layout: layout}
}

// Snapshot implements ports.SceneSource. It returns nil before the first Publish.
func (s *Scene) Snapshot() *domain.Graph {
	return s.graph.Load()
}

// Publish merges next into the current snapshot, places new nodes and swaps
// the result in. Publish must not be called concurrently.
func (s *Scene) Publish(next *domain.Graph) domain.MergeResult {
	prev := s.graph.Load()
	if prev == nil {
		prev = domain.NewGraph()
	}

	res := prev.Merge(next)
	if s.layout != nil {
		s.layout.Place(res.Graph)
	}
	s.graph.Store(res.Graph)
	return res
}
