package domain

import (
	"slices"
	"time"
)

// ServiceIcon maps node IDs matching Pattern (a regular expression) to an icon file.
type ServiceIcon struct {
	Pattern  string
	Filename string
}

// ExternalIcon maps an external node type to an icon file.
type ExternalIcon struct {
	Name     string
	Filename string
}

// Style holds the donut and particle colours as CSS-like colour strings.
type Style struct {
	HealthyColor string
	DangerColor  string
	UnknownColor string
}

// ParticleSettings tunes the particle spawn policy.
type ParticleSettings struct {
	// Cadence is the interval between spawn evaluations.
	Cadence time.Duration
	// MaxSpawnRate caps the particles spawned per edge and second.
	MaxSpawnRate float64
	// MinVelocity and MaxVelocity bound the progress per millisecond.
	MinVelocity float64
	MaxVelocity float64
	// MaxPerEdge caps the particles alive in one lane of an edge.
	MaxPerEdge int
}

// Settings is the read-only configuration surface of the renderer.
type Settings struct {
	Animate              bool
	ShowConnectionStats  bool
	ShowDebugInformation bool
	ShowBaselines        bool
	ShowDummyData        bool

	// SumTimings aggregates node metrics by sum instead of mean.
	SumTimings bool
	// FilterEmptyConnections drops edges without any metric.
	FilterEmptyConnections bool

	ServiceIcons  []ServiceIcon
	ExternalIcons []ExternalIcon
	Style         Style
	Particles     ParticleSettings
}

// DefaultSettings returns the settings used when no configuration overrides them.
func DefaultSettings() Settings {
	return Settings{
		Animate:                true,
		ShowConnectionStats:    true,
		SumTimings:             true,
		FilterEmptyConnections: true,
		ServiceIcons: []ServiceIcon{
			{Pattern: "java", Filename: "java"},
			{Pattern: "spok|star trek", Filename: "star_trek"},
		},
		ExternalIcons: []ExternalIcon{
			{Name: "web", Filename: "web"},
			{Name: "jms", Filename: "message"},
			{Name: "jdbc", Filename: "database"},
			{Name: "http", Filename: "http"},
		},
		Style: Style{
			HealthyColor: "rgb(87, 148, 242)",
			DangerColor:  "rgb(184, 36, 36)",
			UnknownColor: "rgb(123, 123, 138)",
		},
		Particles: DefaultParticleSettings(),
	}
}

// DefaultParticleSettings returns the default spawn policy tuning.
func DefaultParticleSettings() ParticleSettings {
	return ParticleSettings{
		Cadence:      50 * time.Millisecond,
		MaxSpawnRate: 12,
		MinVelocity:  1.0 / 4000,
		MaxVelocity:  1.0 / 600,
		MaxPerEdge:   64,
	}
}

// IconsChanged reports whether the icon mappings differ between two settings.
func IconsChanged(a, b Settings) bool {
	return !slices.Equal(a.ServiceIcons, b.ServiceIcons) ||
		!slices.Equal(a.ExternalIcons, b.ExternalIcons)
}
