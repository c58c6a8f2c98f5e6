package app

import (
	"slices"
	"sync"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

var _ ports.Selection = (*Selection)(nil)

// Selection is the set of selected node and edge IDs. It is safe for
// concurrent use.
type Selection struct {
	mu  sync.RWMutex
	ids []string
}

// NewSelection creates a selection holding ids.
func NewSelection(ids ...string) *Selection {
	s := &Selection{}
	s.Set(ids...)
	return s
}

// Selected implements ports.Selection.
func (s *Selection) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

// Set replaces the selection. Duplicate and empty IDs are dropped.
func (s *Selection) Set(ids ...string) {
	next := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(next, id) {
			next = append(next, id)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = next
}

// Prune drops IDs that are neither a node nor an edge of g and reports
// whether the selection changed.
func (s *Selection) Prune(g *domain.Graph) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.ids)
	s.ids = slices.DeleteFunc(s.ids, func(id string) bool {
		if _, ok := g.Node(id); ok {
			return false
		}
		_, ok := g.Edge(id)
		return !ok
	})
	return len(s.ids) != before
}
