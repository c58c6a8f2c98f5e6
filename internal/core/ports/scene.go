package ports

import (
	"go.trai.ch/trafficlens/internal/core/domain"
)

// SceneSource publishes the current graph snapshot. Snapshots are immutable;
// a refresh swaps in a new one.
//
//go:generate mockgen -source=scene.go -destination=mocks/mock_scene.go -package=mocks
type SceneSource interface {
	Snapshot() *domain.Graph
}

// Selection reports the IDs of the nodes and edges the user selected.
type Selection interface {
	Selected() []string
}

// Viewport reports the pan/zoom transform of the view.
type Viewport interface {
	Transform() domain.Transform
}

// Layout assigns positions to nodes that have none.
type Layout interface {
	Place(g *domain.Graph)
}

// GraphSource loads a graph from a data file.
type GraphSource interface {
	Load(path string) (*domain.Graph, error)
}
