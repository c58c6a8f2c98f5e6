package particles

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

// maxCatchUp bounds the time credited to a single spawn step, so a stalled
// ticker does not release a burst of particles when it resumes.
const maxCatchUp = time.Second

// Engine spawns particles on the edges of the current scene at a fixed cadence.
type Engine struct {
	store   *Store
	scene   ports.SceneSource
	clock   clockwork.Clock
	metrics ports.RenderMetrics

	mu       sync.Mutex
	settings domain.ParticleSettings
	accum    map[string]*[len(domain.ParticleClasses)]float64
	lastTick time.Time

	runMu   sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewEngine creates a stopped engine.
func NewEngine(
	store *Store,
	scene ports.SceneSource,
	clock clockwork.Clock,
	metrics ports.RenderMetrics,
	settings domain.ParticleSettings,
) *Engine {
	return &Engine{
		store:    store,
		scene:    scene,
		clock:    clock,
		metrics:  metrics,
		settings: settings,
		accum:    make(map[string]*[len(domain.ParticleClasses)]float64),
	}
}

// Store returns the particle store the engine spawns into.
func (e *Engine) Store() *Store {
	return e.store
}

// SetSettings replaces the spawn policy tuning.
func (e *Engine) SetSettings(s domain.ParticleSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s
}

// Start begins spawning. It returns immediately; spawning continues until
// Stop is called or ctx is cancelled. Starting a running engine does nothing.
func (e *Engine) Start(ctx context.Context) {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if e.running {
		return
	}

	e.mu.Lock()
	cadence := e.settings.Cadence
	e.lastTick = time.Time{}
	e.mu.Unlock()
	if cadence <= 0 {
		cadence = domain.DefaultParticleSettings().Cadence
	}

	e.running = true
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	ticker := e.clock.NewTicker(cadence)

	go func(stop, done chan struct{}) {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				e.markStopped(stop)
				return
			case <-stop:
				return
			case now := <-ticker.Chan():
				e.Tick(now)
			}
		}
	}(e.stop, e.done)
}

func (e *Engine) markStopped(stop chan struct{}) {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if e.stop == stop {
		e.running = false
	}
}

// Stop halts spawning and waits for the spawn goroutine to exit. Particles
// already alive are left for the renderer to retire.
func (e *Engine) Stop() {
	e.runMu.Lock()
	if !e.running {
		done := e.done
		e.runMu.Unlock()
		if done != nil {
			<-done
		}
		return
	}
	e.running = false
	close(e.stop)
	done := e.done
	e.runMu.Unlock()
	<-done
}

// Running reports whether the engine is spawning.
func (e *Engine) Running() bool {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	return e.running
}

// Count returns the number of live particles.
func (e *Engine) Count() int {
	return e.store.Count()
}

// Tick performs one spawn step at now and returns the number of particles
// spawned. Lanes of edges missing from the scene are dropped.
func (e *Engine) Tick(now time.Time) int {
	g := e.scene.Snapshot()

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.settings
	dt := s.Cadence
	if !e.lastTick.IsZero() {
		dt = now.Sub(e.lastTick)
	}
	e.lastTick = now
	dt = max(0, min(dt, maxCatchUp))

	live := make(map[string]struct{})
	var spawned [len(domain.ParticleClasses)]int
	if g != nil {
		for edge := range g.Edges() {
			live[edge.ID] = struct{}{}
			e.spawnOn(edge, now, dt, s, &spawned)
		}
	}

	for id := range e.accum {
		if _, ok := live[id]; !ok {
			delete(e.accum, id)
		}
	}
	e.store.Retain(func(id string) bool {
		_, ok := live[id]
		return ok
	})

	total := 0
	for _, class := range domain.ParticleClasses {
		if spawned[class] > 0 {
			e.metrics.ParticlesSpawned(class.String(), spawned[class])
		}
		total += spawned[class]
	}
	e.metrics.ParticlesLive(e.store.Count())
	return total
}

func (e *Engine) spawnOn(
	edge domain.Edge,
	now time.Time,
	dt time.Duration,
	s domain.ParticleSettings,
	spawned *[len(domain.ParticleClasses)]int,
) {
	normal, danger := SpawnRates(edge.Metrics, s)
	rates := [len(domain.ParticleClasses)]float64{normal, danger}

	acc, ok := e.accum[edge.ID]
	if !ok {
		acc = &[len(domain.ParticleClasses)]float64{}
		for _, class := range domain.ParticleClasses {
			acc[class] = phase(edge.ID, class)
		}
		e.accum[edge.ID] = acc
	}

	velocity := Velocity(edge.Metrics, s)
	for _, class := range domain.ParticleClasses {
		acc[class] += rates[class] * dt.Seconds()
		for acc[class] >= 1 {
			acc[class]--
			p := domain.Particle{StartTime: now, Velocity: velocity}
			if e.store.Append(edge.ID, class, p, s.MaxPerEdge) {
				spawned[class]++
			}
		}
	}
}
