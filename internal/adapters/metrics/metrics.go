// Package metrics exposes render loop counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/trafficlens/internal/core/ports"
)

const namespace = "trafficlens"

var _ ports.RenderMetrics = (*Registry)(nil)

// Registry holds the renderer metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	frames     *prometheus.CounterVec
	spawned    *prometheus.CounterVec
	retired    prometheus.Counter
	live       prometheus.Gauge
	assetLoads *prometheus.CounterVec
}

// NewRegistry creates a registry with every renderer metric registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		frames: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "frames_total",
				Help:      "Frames considered by the render loop, by result",
			},
			[]string{"result"},
		),
		spawned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "particles_spawned_total",
				Help:      "Particles spawned, by class",
			},
			[]string{"class"},
		),
		retired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "particles_retired_total",
			Help:      "Particles removed after reaching the end of their edge",
		}),
		live: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "particles_live",
			Help:      "Particles currently in flight",
		}),
		assetLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "asset_loads_total",
				Help:      "Finished icon loads, by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Prometheus returns the underlying registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) FrameRendered() { r.frames.WithLabelValues("rendered").Inc() }

func (r *Registry) FrameSkipped() { r.frames.WithLabelValues("skipped").Inc() }

func (r *Registry) ParticlesSpawned(class string, n int) {
	if n > 0 {
		r.spawned.WithLabelValues(class).Add(float64(n))
	}
}

func (r *Registry) ParticlesRetired(n int) {
	if n > 0 {
		r.retired.Add(float64(n))
	}
}

func (r *Registry) ParticlesLive(n int) { r.live.Set(float64(n)) }

func (r *Registry) AssetLoaded(outcome string) { r.assetLoads.WithLabelValues(outcome).Inc() }
