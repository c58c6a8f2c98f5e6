package particles

import (
	"math"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/trafficlens/internal/core/domain"
)

// SpawnRates returns how many normal and danger particles per second an edge
// emits. Edges carrying error traffic emit only danger particles, at a rate
// driven by the larger of their packet and error rates; all other edges with
// measured traffic emit normal particles. Rates grow logarithmically and are
// capped at MaxSpawnRate.
func SpawnRates(m domain.Metrics, s domain.ParticleSettings) (normal, danger float64) {
	if m.EPS > 0 {
		return 0, spawnRate(math.Max(m.PPS, m.EPS), s)
	}
	if !m.HasTraffic() {
		return 0, 0
	}
	return spawnRate(m.PPS, s), 0
}

func spawnRate(events float64, s domain.ParticleSettings) float64 {
	if events <= 0 {
		return 0
	}
	return math.Max(0, math.Min(s.MaxSpawnRate, math.Log2(1+events)))
}

// Velocity returns the progress per millisecond of particles on an edge.
// Larger packets travel faster; the result always lies within
// [MinVelocity, MaxVelocity].
func Velocity(m domain.Metrics, s domain.ParticleSettings) float64 {
	v := s.MinVelocity * (1 + math.Log2(1+m.BitsPerPacket()/1000))
	return math.Max(s.MinVelocity, math.Min(s.MaxVelocity, v))
}

// phase derives a stable starting fraction in [0,1) for an edge's spawn
// accumulator so edges with equal traffic do not emit in lock-step.
func phase(edgeID string, class domain.ParticleClass) float64 {
	h := xxhash.Sum64String(edgeID + "#" + class.String())
	return float64(h>>11) / (1 << 53)
}
