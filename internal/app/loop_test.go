package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/internal/adapters/telemetry"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/trafficlens/internal/core/ports/mocks"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.uber.org/mock/gomock"
)

type recordingDashboard struct {
	mu         sync.Mutex
	statuses   []domain.LoopStatus
	graphs     [][]string
	selections []domain.SelectionStats
	selected   []bool
}

func (d *recordingDashboard) Start(context.Context) error { return nil }
func (d *recordingDashboard) Stop() error                  { return nil }
func (d *recordingDashboard) Wait() error                  { return nil }

func (d *recordingDashboard) OnStatus(s domain.LoopStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses = append(d.statuses, s)
}

func (d *recordingDashboard) OnGraph(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.graphs = append(d.graphs, ids)
}

func (d *recordingDashboard) OnSelection(stats domain.SelectionStats, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selections = append(d.selections, stats)
	d.selected = append(d.selected, ok)
}

func (d *recordingDashboard) lastSelection() (domain.SelectionStats, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.selections) == 0 {
		return domain.SelectionStats{}, false
	}
	return d.selections[len(d.selections)-1], d.selected[len(d.selected)-1]
}

func (d *recordingDashboard) statusCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.statuses)
}

func newTestLoop(t *testing.T, source GraphProvider, dash ports.Dashboard, clock clockwork.Clock) *Loop {
	t.Helper()

	a, _ := newTestApp(t)
	v, err := a.prepare(ViewOptions{Demo: true, Width: 64, Height: 48}, clock)
	require.NoError(t, err)

	engine := particles.NewEngine(a.particles, v.scene, clock, a.metrics, v.settings.Particles)
	t.Cleanup(engine.Stop)

	return NewLoop(LoopDeps{
		Drawer:    v.drawer,
		Engine:    engine,
		Scene:     v.scene,
		Selection: v.selection,
		Viewport:  v.viewport,
		Source:    source,
		Dashboard: dash,
		Tracer:    telemetry.NewNoOpTracer(),
		Logger:    a.logger,
		Clock:     clock,
	}, LoopConfig{})
}

func staticSource(g *domain.Graph) GraphProvider {
	return func() (*domain.Graph, error) { return g, nil }
}

func drain(ctx context.Context, l *Loop) {
	for {
		select {
		case cmd := <-l.commands:
			cmd(ctx)
		default:
			return
		}
	}
}

func TestLoop_RefreshPublishesGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	dash := mocks.NewMockDashboard(ctrl)
	dash.EXPECT().OnGraph(gomock.InAnyOrder([]string{"a", "b", "c"})).Times(1)
	dash.EXPECT().OnSelection(gomock.Any(), false).Times(1)

	l := newTestLoop(t, staticSource(chain(t, "a", "b", "c")), dash, clockwork.NewFakeClock())

	require.NoError(t, l.Refresh(t.Context()))
	assert.Equal(t, 3, l.deps.Scene.Snapshot().NodeCount())
}

func TestLoop_RefreshFailureKeepsSnapshot(t *testing.T) {
	calls := 0
	source := func() (*domain.Graph, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("feed unavailable")
		}
		return chain(t, "a", "b"), nil
	}
	l := newTestLoop(t, source, &recordingDashboard{}, clockwork.NewFakeClock())

	require.NoError(t, l.Refresh(t.Context()))
	before := l.deps.Scene.Snapshot()

	err := l.Refresh(t.Context())
	require.ErrorContains(t, err, "failed to refresh graph")
	require.ErrorContains(t, err, "feed unavailable")
	assert.Same(t, before, l.deps.Scene.Snapshot())
}

func TestLoop_RefreshRetiresRemovedLanes(t *testing.T) {
	graphs := []*domain.Graph{chain(t, "a", "b", "c"), chain(t, "a", "b")}
	source := func() (*domain.Graph, error) {
		g := graphs[0]
		graphs = graphs[1:]
		return g, nil
	}
	clock := clockwork.NewFakeClock()
	l := newTestLoop(t, source, &recordingDashboard{}, clock)
	require.NoError(t, l.Refresh(t.Context()))

	kept := domain.EdgeID("a", "b", domain.DirectionOut)
	removed := domain.EdgeID("b", "c", domain.DirectionOut)
	p := domain.Particle{StartTime: clock.Now(), Velocity: 1.0 / 1000}
	store := l.deps.Engine.Store()
	require.True(t, store.Append(kept, domain.ParticleNormal, p, 8))
	require.True(t, store.Append(removed, domain.ParticleNormal, p, 8))

	require.NoError(t, l.Refresh(t.Context()))
	assert.Equal(t, 1, store.Count(), "particles of the removed edge are discarded")
	visited := 0
	store.Visit(removed, clock.Now(), func(domain.ParticleClass, float64) { visited++ })
	assert.Zero(t, visited)
}

func TestLoop_RefreshPrunesSelection(t *testing.T) {
	graphs := []*domain.Graph{chain(t, "a", "b", "c"), chain(t, "a", "b")}
	source := func() (*domain.Graph, error) {
		g := graphs[0]
		graphs = graphs[1:]
		return g, nil
	}
	dash := &recordingDashboard{}
	l := newTestLoop(t, source, dash, clockwork.NewFakeClock())
	require.NoError(t, l.Refresh(t.Context()))

	l.deps.Selection.Set("c")
	require.NoError(t, l.Refresh(t.Context()))

	assert.Empty(t, l.deps.Selection.Selected())
	_, ok := dash.lastSelection()
	assert.False(t, ok)
}

func TestLoop_RefreshWritesSnapshot(t *testing.T) {
	l := newTestLoop(t, staticSource(chain(t, "a", "b")), &recordingDashboard{}, clockwork.NewFakeClock())
	snapshots := 0
	l.deps.Snapshot = func() error {
		snapshots++
		return nil
	}

	require.NoError(t, l.Refresh(t.Context()))

	assert.Equal(t, 1, snapshots)
	assert.Equal(t, 1, l.Status().Rendered)
}

func TestLoop_SelectPublishesStats(t *testing.T) {
	dash := &recordingDashboard{}
	l := newTestLoop(t, staticSource(chain(t, "a", "b")), dash, clockwork.NewFakeClock())
	require.NoError(t, l.Refresh(t.Context()))

	l.Select("b")
	drain(t.Context(), l)

	stats, ok := dash.lastSelection()
	require.True(t, ok)
	assert.Equal(t, "b", stats.Node)
	assert.Equal(t, 1, l.Status().Rendered)
}

func TestLoop_ZoomQueuesFrame(t *testing.T) {
	l := newTestLoop(t, staticSource(chain(t, "a", "b")), &recordingDashboard{}, clockwork.NewFakeClock())
	require.NoError(t, l.Refresh(t.Context()))
	before := l.Status().Zoom

	l.Zoom(1)
	drain(t.Context(), l)

	status := l.Status()
	assert.Greater(t, status.Zoom, before)
	assert.Equal(t, 1, status.Rendered)
}

func TestLoop_QueueFullDropsCommands(t *testing.T) {
	l := newTestLoop(t, staticSource(chain(t, "a")), &recordingDashboard{}, clockwork.NewFakeClock())

	for range commandQueue + 4 {
		l.Fit()
	}
	assert.Len(t, l.commands, commandQueue)
}

func TestLoop_ApplySettingsRejectsInvalidColor(t *testing.T) {
	l := newTestLoop(t, staticSource(chain(t, "a")), &recordingDashboard{}, clockwork.NewFakeClock())
	want := l.deps.Drawer.Settings().Style.HealthyColor

	s := domain.DefaultSettings()
	s.Style.HealthyColor = "not-a-colour"
	l.ApplySettings(&s)
	drain(t.Context(), l)

	assert.Equal(t, want, l.deps.Drawer.Settings().Style.HealthyColor)
	assert.Equal(t, 0, l.Status().Rendered)
}

func TestLoop_ToggleAnimationStartsAndStopsEngine(t *testing.T) {
	l := newTestLoop(t, staticSource(chain(t, "a", "b")), &recordingDashboard{}, clockwork.NewFakeClock())
	require.NoError(t, l.Refresh(t.Context()))

	s := domain.DefaultSettings()
	s.Animate = false
	l.ApplySettings(&s)
	drain(t.Context(), l)
	assert.False(t, l.deps.Engine.Running())
	assert.False(t, l.Status().Animate)

	l.ToggleAnimation()
	drain(t.Context(), l)
	assert.True(t, l.deps.Engine.Running())
	assert.True(t, l.Status().Animate)

	l.ToggleAnimation()
	drain(t.Context(), l)
	assert.False(t, l.deps.Engine.Running())
}

func TestLoop_RunFailsOnInitialRefresh(t *testing.T) {
	source := func() (*domain.Graph, error) { return nil, errors.New("no feed") }
	l := newTestLoop(t, source, &recordingDashboard{}, clockwork.NewFakeClock())

	err := l.Run(t.Context())
	require.ErrorContains(t, err, "initial refresh failed")
}

func TestLoop_RunReportsStatusUntilCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dash := &recordingDashboard{}
		l := newTestLoop(t, staticSource(chain(t, "a", "b", "c")), dash, clockwork.NewRealClock())

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- l.Run(ctx) }()

		time.Sleep(3*time.Second + time.Millisecond)
		synctest.Wait()
		assert.GreaterOrEqual(t, dash.statusCount(), 3)

		cancel()
		require.NoError(t, <-done)
		assert.False(t, l.deps.Engine.Running())
	})
}
