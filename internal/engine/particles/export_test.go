package particles

import "go.trai.ch/trafficlens/internal/core/domain"

// Len returns the number of particles of one class on an edge.
// This is exported for testing purposes only.
func (s *Store) Len(edgeID string, class domain.ParticleClass) int {
	l, ok := s.lane(edgeID)
	if !ok {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queues[class])
}

// Edges returns the IDs of all edges that have a lane, in order.
// This is exported for testing purposes only.
func (s *Store) Edges() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, s.lanes.Len())
	s.lanes.Scan(func(id string, _ *lane) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}
