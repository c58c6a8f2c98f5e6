// Package particles owns the animated traffic markers: where they live, when
// they are spawned and how they are retired.
package particles

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/btree"
	"go.trai.ch/trafficlens/internal/core/domain"
)

// lane holds the particles of one edge, one queue per class. Particles are
// appended in spawn order. A retired lane has been dropped from the store and
// must not receive particles.
type lane struct {
	mu      sync.Mutex
	queues  [len(domain.ParticleClasses)][]domain.Particle
	retired bool
}

// Store keeps the particle lanes of all edges ordered by edge ID.
//
// The spawning engine is the only writer that appends; the renderer only
// removes, and only through RetireExpired. Each lane is guarded by its own
// lock so both sides can work on different edges at once.
type Store struct {
	mu    sync.RWMutex
	lanes btree.Map[string, *lane]
	count atomic.Int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) lane(edgeID string) (*lane, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lanes.Get(edgeID)
}

func (s *Store) laneOrCreate(edgeID string) *lane {
	if l, ok := s.lane(edgeID); ok {
		return l
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.lanes.Get(edgeID); ok {
		return l
	}
	l := &lane{}
	s.lanes.Set(edgeID, l)
	return l
}

// Append adds a particle to an edge lane unless the lane already holds limit
// particles of that class. A limit of zero or less means no limit.
func (s *Store) Append(edgeID string, class domain.ParticleClass, p domain.Particle, limit int) bool {
	for {
		added, retired := s.appendTo(s.laneOrCreate(edgeID), class, p, limit)
		if !retired {
			return added
		}
	}
}

// appendTo adds p to l. It reports retired when Retain dropped l after it was
// looked up, in which case nothing is added and the caller must look again.
func (s *Store) appendTo(l *lane, class domain.ParticleClass, p domain.Particle, limit int) (added, retired bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.retired {
		return false, true
	}
	if limit > 0 && len(l.queues[class]) >= limit {
		return false, false
	}
	l.queues[class] = append(l.queues[class], p)
	s.count.Add(1)
	return true, false
}

// Visit calls fn for every live particle of an edge with its progress at now,
// newest first. Expired particles are skipped, not removed. fn must not call
// back into the store.
func (s *Store) Visit(edgeID string, now time.Time, fn func(class domain.ParticleClass, t float64)) {
	l, ok := s.lane(edgeID)
	if !ok {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, class := range domain.ParticleClasses {
		q := l.queues[class]
		for i := len(q) - 1; i >= 0; i-- {
			t := q[i].Progress(now)
			if t > 1 {
				continue
			}
			fn(class, t)
		}
	}
}

// RetireExpired removes every particle of an edge whose progress at now is
// past the end of the curve and returns how many were removed. Calling it
// again for the same instant removes nothing.
func (s *Store) RetireExpired(edgeID string, now time.Time) int {
	l, ok := s.lane(edgeID)
	if !ok {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for _, class := range domain.ParticleClasses {
		q := l.queues[class]
		// Back to front, so a removal never shifts an entry not yet visited.
		for i := len(q) - 1; i >= 0; i-- {
			if q[i].Expired(now) {
				q = slices.Delete(q, i, i+1)
				removed++
			}
		}
		l.queues[class] = q
	}
	s.count.Add(int64(-removed))
	return removed
}

// Retain drops the lanes of every edge for which keep returns false and
// returns the number of particles discarded with them.
func (s *Store) Retain(keep func(edgeID string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var drop []string
	s.lanes.Scan(func(id string, _ *lane) bool {
		if !keep(id) {
			drop = append(drop, id)
		}
		return true
	})

	discarded := 0
	for _, id := range drop {
		l, _ := s.lanes.Delete(id)
		l.mu.Lock()
		for _, q := range l.queues {
			discarded += len(q)
		}
		l.queues = [len(domain.ParticleClasses)][]domain.Particle{}
		l.retired = true
		l.mu.Unlock()
	}
	s.count.Add(int64(-discarded))
	return discarded
}

// Count returns the number of particles across all lanes.
func (s *Store) Count() int {
	return int(s.count.Load())
}

// Clear removes every lane.
func (s *Store) Clear() {
	s.Retain(func(string) bool { return false })
}
