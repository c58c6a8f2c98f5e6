package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/trafficlens/internal/adapters/layout"
	"go.trai.ch/trafficlens/internal/adapters/tui"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.trai.ch/trafficlens/internal/engine/render"
	"go.trai.ch/zerr"
)

const (
	// DefaultFrameInterval paces the frame ticker at 30 frames per second.
	DefaultFrameInterval = time.Second / 30
	// DefaultRefreshInterval is how often the graph source is re-read.
	DefaultRefreshInterval = 5 * time.Second

	commandQueue = 32
)

var _ tui.Controls = (*Loop)(nil)

// GraphProvider produces the graph for the next refresh.
type GraphProvider func() (*domain.Graph, error)

// LoopDeps bundles the collaborators of a Loop.
type LoopDeps struct {
	Drawer    *render.Drawer
	Engine    *particles.Engine
	Scene     *Scene
	Selection *Selection
	Viewport  *layout.Viewport
	Source    GraphProvider
	Dashboard ports.Dashboard
	Tracer    ports.Tracer
	Logger    ports.Logger
	Clock     clockwork.Clock

	// Reconfigure receives applied settings so the graph source can follow
	// generator options. Optional.
	Reconfigure func(domain.Settings)
	// Snapshot persists the current frame after each refresh. Optional.
	Snapshot func() error
}

// LoopConfig paces a Loop.
type LoopConfig struct {
	FrameInterval   time.Duration
	RefreshInterval time.Duration
}

// Loop is the host frame loop. One goroutine runs it and owns the drawer;
// other goroutines steer it through queued commands.
type Loop struct {
	deps     LoopDeps
	cfg      LoopConfig
	commands chan func(context.Context)

	rendered int
	skipped  int
}

// NewLoop creates a loop; zero intervals take the defaults.
func NewLoop(deps LoopDeps, cfg LoopConfig) *Loop {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	return &Loop{
		deps:     deps,
		cfg:      cfg,
		commands: make(chan func(context.Context), commandQueue),
	}
}

// Run refreshes the scene once, then draws frames, publishes the FPS once per
// second and refreshes periodically until ctx is cancelled. A failing initial
// refresh is returned; later failures are logged and keep the last snapshot.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Refresh(ctx); err != nil {
		return zerr.Wrap(err, "initial refresh failed")
	}
	l.fitAll()

	if l.deps.Drawer.Settings().Animate {
		l.deps.Engine.Start(ctx)
	}
	defer l.deps.Engine.Stop()

	frames := l.deps.Clock.NewTicker(l.cfg.FrameInterval)
	defer frames.Stop()
	fps := l.deps.Clock.NewTicker(time.Second)
	defer fps.Stop()
	refresh := l.deps.Clock.NewTicker(l.cfg.RefreshInterval)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-l.commands:
			cmd(ctx)
		case <-frames.Chan():
			l.frame(false)
		case <-fps.Chan():
			l.tickFPS()
		case <-refresh.Chan():
			if err := l.Refresh(ctx); err != nil {
				l.deps.Logger.Error(err)
			}
		}
	}
}

func (l *Loop) frame(force bool) {
	if l.deps.Drawer.Repaint(force) {
		l.rendered++
	} else {
		l.skipped++
	}
}

func (l *Loop) tickFPS() {
	l.deps.Drawer.TickFPS()
	l.deps.Dashboard.OnStatus(l.Status())
}

// Status reports the loop state. It must be called from the loop goroutine.
func (l *Loop) Status() domain.LoopStatus {
	status := domain.LoopStatus{
		FPS:       l.deps.Drawer.State().FPS,
		Particles: l.deps.Engine.Count(),
		Rendered:  l.rendered,
		Skipped:   l.skipped,
		Animate:   l.deps.Drawer.Settings().Animate,
		Zoom:      l.deps.Viewport.Transform().Zoom,
	}
	if g := l.deps.Scene.Snapshot(); g != nil {
		status.Nodes = g.NodeCount()
		status.Edges = g.EdgeCount()
	}
	return status
}

// Refresh reads the graph source and publishes the result. Particle lanes and
// selected IDs of elements that disappeared are dropped.
func (l *Loop) Refresh(ctx context.Context) error {
	_, span := l.deps.Tracer.Start(ctx, "refresh")
	defer span.End()

	next, err := l.deps.Source()
	if err != nil {
		err = zerr.Wrap(err, "failed to refresh graph")
		span.RecordError(err)
		return err
	}

	res := l.deps.Scene.Publish(next)
	g := res.Graph
	if len(res.RemovedEdges) > 0 {
		l.deps.Engine.Store().Retain(func(edgeID string) bool {
			_, ok := g.Edge(edgeID)
			return ok
		})
	}
	l.deps.Selection.Prune(g)
	span.SetAttribute("nodes", g.NodeCount())
	span.SetAttribute("edges", g.EdgeCount())
	span.SetAttribute("removed_edges", len(res.RemovedEdges))

	ids := make([]string, 0, g.NodeCount())
	for n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	l.deps.Dashboard.OnGraph(ids)
	l.publishSelection()

	if l.deps.Snapshot != nil {
		l.frame(true)
		if err := l.deps.Snapshot(); err != nil {
			span.RecordError(err)
			l.deps.Logger.Error(err)
		}
	}
	return nil
}

func (l *Loop) publishSelection() {
	stats, ok := domain.ComputeSelectionStats(l.deps.Scene.Snapshot(), l.deps.Selection.Selected())
	l.deps.Dashboard.OnSelection(stats, ok)
}

func (l *Loop) fitAll() {
	if g := l.deps.Scene.Snapshot(); g != nil {
		l.deps.Viewport.Fit(g, nil)
	}
}

func (l *Loop) enqueue(cmd func(context.Context)) {
	select {
	case l.commands <- cmd:
	default:
		l.deps.Logger.Warn("loop command queue full, dropping command")
	}
}

// ApplySettings queues new settings. Rejected settings are logged and the
// previous ones stay in effect.
func (l *Loop) ApplySettings(s *domain.Settings) {
	next := *s
	l.enqueue(func(ctx context.Context) {
		l.apply(ctx, next)
	})
}

func (l *Loop) apply(ctx context.Context, s domain.Settings) {
	_, span := l.deps.Tracer.Start(ctx, "settings")
	defer span.End()

	if err := l.deps.Drawer.SetSettings(s); err != nil {
		span.RecordError(err)
		l.deps.Logger.Error(zerr.Wrap(err, "settings rejected"))
		return
	}
	if l.deps.Reconfigure != nil {
		l.deps.Reconfigure(s)
	}
	l.deps.Engine.SetSettings(s.Particles)
	span.SetAttribute("animate", s.Animate)

	switch {
	case s.Animate && !l.deps.Engine.Running():
		l.deps.Engine.Start(ctx)
	case !s.Animate && l.deps.Engine.Running():
		l.deps.Engine.Stop()
	}
	l.frame(true)
	l.deps.Logger.Info("settings applied")
}

// Select implements tui.Controls.
func (l *Loop) Select(ids ...string) {
	l.deps.Selection.Set(ids...)
	l.enqueue(func(context.Context) {
		l.publishSelection()
		l.frame(true)
	})
}

// Zoom implements tui.Controls.
func (l *Loop) Zoom(steps float64) {
	l.deps.Viewport.Zoom(steps)
	l.enqueue(func(context.Context) { l.frame(true) })
}

// Fit implements tui.Controls.
func (l *Loop) Fit() {
	l.enqueue(func(context.Context) {
		g := l.deps.Scene.Snapshot()
		if g == nil {
			return
		}
		nb := domain.ComputeNeighborhood(g, l.deps.Selection.Selected())
		l.deps.Viewport.Fit(g, nb.IDs())
		l.frame(true)
	})
}

// ToggleAnimation implements tui.Controls.
func (l *Loop) ToggleAnimation() {
	l.enqueue(func(ctx context.Context) {
		s := l.deps.Drawer.Settings()
		s.Animate = !s.Animate
		l.apply(ctx, s)
	})
}
