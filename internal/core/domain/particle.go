package domain

import "time"

// ParticleClass separates particles carrying error traffic from the rest.
type ParticleClass uint8

const (
	// ParticleNormal is ordinary traffic.
	ParticleNormal ParticleClass = iota
	// ParticleDanger is traffic on an edge that reports errors.
	ParticleDanger
)

// String returns the class name.
func (c ParticleClass) String() string {
	if c == ParticleDanger {
		return "danger"
	}
	return "normal"
}

// ParticleClasses lists all classes in drawing order.
var ParticleClasses = [...]ParticleClass{ParticleNormal, ParticleDanger}

// Particle is an animated marker travelling along an edge curve.
type Particle struct {
	StartTime time.Time
	// Velocity is the progress along the curve per millisecond.
	Velocity float64
}

// Progress returns the normalized position t along the curve at now.
func (p Particle) Progress(now time.Time) float64 {
	elapsed := float64(now.Sub(p.StartTime)) / float64(time.Millisecond)
	return elapsed * p.Velocity
}

// Expired reports whether the particle has left the far end of the curve.
func (p Particle) Expired(now time.Time) bool {
	return p.Progress(now) > 1
}
