package render_test

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/internal/adapters/record"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports/mocks"
	"go.trai.ch/trafficlens/internal/engine/assets"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.trai.ch/trafficlens/internal/engine/render"
	"go.uber.org/mock/gomock"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	canvas    *record.Canvas
	scene     *mocks.MockSceneSource
	selection *mocks.MockSelection
	viewport  *mocks.MockViewport
	metrics   *mocks.MockRenderMetrics
	store     *particles.Store
	cache     *assets.Cache
	clock     clockwork.FakeClock

	graph    *domain.Graph
	selected []string
	tr       domain.Transform
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		canvas:    record.NewCanvas(320, 240),
		scene:     mocks.NewMockSceneSource(ctrl),
		selection: mocks.NewMockSelection(ctrl),
		viewport:  mocks.NewMockViewport(ctrl),
		metrics:   mocks.NewMockRenderMetrics(ctrl),
		store:     particles.NewStore(),
		clock:     clockwork.NewFakeClockAt(epoch),
		graph:     domain.NewGraph(),
		tr:        domain.IdentityTransform(),
	}
	f.scene.EXPECT().Snapshot().DoAndReturn(func() *domain.Graph { return f.graph }).AnyTimes()
	f.selection.EXPECT().Selected().DoAndReturn(func() []string { return f.selected }).AnyTimes()
	f.viewport.EXPECT().Transform().DoAndReturn(func() domain.Transform { return f.tr }).AnyTimes()
	f.metrics.EXPECT().FrameRendered().AnyTimes()
	f.metrics.EXPECT().FrameSkipped().AnyTimes()
	f.metrics.EXPECT().ParticlesRetired(gomock.Any()).AnyTimes()
	f.metrics.EXPECT().AssetLoaded(gomock.Any()).AnyTimes()

	loader := mocks.NewMockImageLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) (image.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
		}).AnyTimes()
	f.cache = assets.NewCache(loader, mocks.NewMockLogger(ctrl), f.metrics)
	t.Cleanup(f.cache.Close)

	return f
}

func (f *fixture) drawer(t *testing.T, s domain.Settings) *render.Drawer {
	t.Helper()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockIconResolver(ctrl)
	resolver.EXPECT().Locate(gomock.Any()).DoAndReturn(func(asset string) string { return "assets/" + asset }).AnyTimes()

	d, err := render.NewDrawer(render.Deps{
		Canvas:    f.canvas,
		Scene:     f.scene,
		Selection: f.selection,
		Viewport:  f.viewport,
		Particles: f.store,
		Assets:    f.cache,
		Resolver:  resolver,
		Logger:    mocks.NewMockLogger(ctrl),
		Metrics:   f.metrics,
		Clock:     f.clock,
	}, s)
	require.NoError(t, err)
	return d
}

func (f *fixture) offscreen() *record.Surface {
	return f.canvas.Offscreen()
}

func addNode(t *testing.T, g *domain.Graph, n domain.Node, at domain.Point) {
	t.Helper()
	require.NoError(t, g.AddNode(n))
	g.SetPosition(n.ID, at)
}

func TestNewDrawer_NoDrawingContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)
	canvas.EXPECT().Context().Return(nil, errors.New("context lost"))

	_, err := render.NewDrawer(render.Deps{Canvas: canvas}, domain.DefaultSettings())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoDrawingContext)
	assert.ErrorContains(t, err, "context lost")
}

func TestNewDrawer_NoOffscreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)
	canvas.EXPECT().Context().Return(record.NewSurface(1, 1), nil)
	canvas.EXPECT().NewOffscreen().Return(nil, nil)

	_, err := render.NewDrawer(render.Deps{Canvas: canvas}, domain.DefaultSettings())

	assert.ErrorIs(t, err, domain.ErrNoDrawingContext)
}

func TestRepaint_FrameSkip(t *testing.T) {
	f := newFixture(t)
	s := domain.DefaultSettings()
	s.Animate = false
	d := f.drawer(t, s)

	require.True(t, d.Repaint(false), "first frame always renders")
	visible := len(f.canvas.Visible().Commands())

	f.clock.Advance(500 * time.Millisecond)
	assert.False(t, d.Repaint(false))
	assert.Len(t, f.canvas.Visible().Commands(), visible, "a skipped frame issues no draw calls")

	f.store.Append("x", domain.ParticleNormal, domain.Particle{StartTime: f.clock.Now(), Velocity: 1}, 0)
	assert.True(t, d.Repaint(false), "live particles force rendering")

	f.store.Clear()
	f.clock.Advance(100 * time.Millisecond)
	assert.False(t, d.Repaint(false))
	assert.True(t, d.Repaint(true), "forced frames always render")

	f.clock.Advance(time.Second)
	assert.True(t, d.Repaint(false), "a second without frames renders")

	s.Animate = true
	require.NoError(t, d.SetSettings(s))
	assert.True(t, d.Repaint(false))
	assert.True(t, d.Repaint(false))
}

func TestRepaint_Composite(t *testing.T) {
	f := newFixture(t)
	f.tr = domain.Transform{Pan: domain.Point{X: 3, Y: 4}, Zoom: 0.5, PixelRatio: 2}
	d := f.drawer(t, domain.DefaultSettings())

	require.True(t, d.Repaint(false))

	w, h := f.offscreen().Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	transforms := f.offscreen().Filter(record.OpTransform)
	require.Len(t, transforms, 1)
	assert.Equal(t, f.tr, transforms[0].Transform)

	cmds := f.canvas.Visible().Commands()
	var ops []record.Op
	for _, c := range cmds {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []record.Op{record.OpTransform, record.OpAlpha, record.OpClear, record.OpBlit}, ops)
}

func TestRepaint_DonutFractions(t *testing.T) {
	f := newFixture(t)
	addNode(t, f.graph, domain.Node{ID: "healthy", Metrics: domain.Metrics{BPS: 1000, EPS: 0, PPS: 100}}, domain.Point{X: 50, Y: 50})
	addNode(t, f.graph, domain.Node{ID: "unknown", Metrics: domain.UnknownMetrics()}, domain.Point{X: 150, Y: 50})
	addNode(t, f.graph, domain.Node{ID: "half", Metrics: domain.Metrics{BPS: 1000, EPS: 50, PPS: 100}}, domain.Point{X: 250, Y: 50})
	d := f.drawer(t, domain.DefaultSettings())
	palette, err := domain.NewPalette(domain.DefaultSettings().Style)
	require.NoError(t, err)

	require.True(t, d.Repaint(false))

	sectors := f.offscreen().Filter(record.OpFillSector)
	require.Len(t, sectors, 4)

	assert.Equal(t, domain.Point{X: 50, Y: 50}, sectors[0].Point)
	assert.Equal(t, palette.Healthy, sectors[0].Color)
	assert.InDelta(t, -math.Pi/2, sectors[0].Start, 1e-9)
	assert.InDelta(t, 3*math.Pi/2, sectors[0].End, 1e-9)

	assert.Equal(t, palette.Unknown, sectors[1].Color)
	assert.InDelta(t, 2*math.Pi, sectors[1].End-sectors[1].Start, 1e-9)

	assert.Equal(t, palette.Danger, sectors[2].Color)
	assert.InDelta(t, math.Pi, sectors[2].End-sectors[2].Start, 1e-9)
	assert.Equal(t, palette.Healthy, sectors[3].Color)
	assert.InDelta(t, sectors[2].End, sectors[3].Start, 1e-9)
}

func edgeGraph(t *testing.T, m domain.Metrics) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	addNode(t, g, domain.Node{ID: "api"}, domain.Point{X: 0, Y: 0})
	addNode(t, g, domain.Node{ID: "db"}, domain.Point{X: 100, Y: 0})
	addNode(t, g, domain.Node{ID: "mq", Kind: domain.NodeExternal, ExternalType: "jms"}, domain.Point{X: 0, Y: 100})
	require.NoError(t, g.AddEdge(domain.Edge{Source: "api", Target: "db", Direction: domain.DirectionOut, Metrics: m}))
	require.NoError(t, g.AddEdge(domain.Edge{Source: "api", Target: "mq", Direction: domain.DirectionIn, Metrics: m}))
	return g
}

func TestRepaint_EdgeColorFollowsErrors(t *testing.T) {
	stroke := func(m domain.Metrics) record.Command {
		f := newFixture(t)
		f.graph = edgeGraph(t, m)
		d := f.drawer(t, domain.DefaultSettings())
		require.True(t, d.Repaint(false))
		curves := f.offscreen().Filter(record.OpStrokeCurve)
		require.Len(t, curves, 2)
		return curves[0]
	}

	clean := stroke(domain.Metrics{BPS: 1000, EPS: 0, PPS: 10})
	failing := stroke(domain.Metrics{BPS: 1000, EPS: 50, PPS: 10})

	assert.Greater(t, failing.Color.R, clean.Color.R)
	assert.Equal(t, clean.Color.G, failing.Color.G)
	assert.InDelta(t, 1, clean.Width, 1e-9)
}

func TestRepaint_SelectionDimsOutsiders(t *testing.T) {
	f := newFixture(t)
	f.graph = edgeGraph(t, domain.Metrics{BPS: 1000, EPS: 0, PPS: 10})
	f.selected = []string{"db"}
	d := f.drawer(t, domain.DefaultSettings())

	require.True(t, d.Repaint(false))

	curves := f.offscreen().Filter(record.OpStrokeCurve)
	require.Len(t, curves, 2)

	// Dimmed edges come first.
	assert.Equal(t, domain.Point{X: 0, Y: 100}, curves[0].Curve[3])
	assert.InDelta(t, 0.25, curves[0].Alpha, 1e-9)
	assert.InDelta(t, 1, curves[0].Width, 1e-9)

	assert.Equal(t, domain.Point{X: 100, Y: 0}, curves[1].Curve[3])
	assert.InDelta(t, 1, curves[1].Alpha, 1e-9)
	assert.InDelta(t, 3, curves[1].Width, 1e-9)
	assert.Equal(t, uint8(140), curves[1].Color.G)

	state := d.State()
	assert.True(t, state.Neighborhood.Has("api:db:out"))
	assert.False(t, state.Neighborhood.Has("mq"))

	// The selected node gets a white cutout, the dimmed external node alpha 0.25.
	var cutout, external record.Command
	for _, c := range f.offscreen().Filter(record.OpFillCircle) {
		switch {
		case c.Point == domain.Point{X: 100, Y: 0} && c.Radius == 9.5:
			cutout = c
		case c.Point == domain.Point{X: 0, Y: 100} && c.Radius == 12:
			external = c
		}
	}
	assert.Equal(t, uint8(0xff), cutout.Color.R)
	assert.InDelta(t, 0.25, external.Alpha, 1e-9)
}

func TestRepaint_ParticlesDrawnAndRetired(t *testing.T) {
	f := newFixture(t)
	f.graph = edgeGraph(t, domain.Metrics{BPS: 1000, EPS: 0, PPS: 10})
	d := f.drawer(t, domain.DefaultSettings())

	now := f.clock.Now()
	f.store.Append("api:db:out", domain.ParticleNormal, domain.Particle{StartTime: now.Add(-500 * time.Millisecond), Velocity: 1.0 / 1000}, 0)
	f.store.Append("api:db:out", domain.ParticleNormal, domain.Particle{StartTime: now.Add(-2 * time.Second), Velocity: 1.0 / 1000}, 0)
	f.store.Append("api:mq:in", domain.ParticleDanger, domain.Particle{StartTime: now, Velocity: 1.0 / 1000}, 0)

	require.True(t, d.Repaint(false))

	var dots []record.Command
	for _, c := range f.offscreen().Filter(record.OpFillCircle) {
		if c.Radius == 1 {
			dots = append(dots, c)
		}
	}
	require.Len(t, dots, 2)

	mid := domain.ParticleCurve(domain.Point{}, domain.Point{X: 100}, domain.DirectionOut).At(0.5)
	assert.InDelta(t, mid.X, dots[0].Point.X, 1e-6)
	assert.InDelta(t, mid.Y, dots[0].Point.Y, 1e-6)
	assert.Equal(t, uint8(0xd1), dots[0].Color.R)

	// Inbound particles start at the target.
	assert.Equal(t, domain.Point{X: 0, Y: 100}, dots[1].Point)
	assert.Equal(t, uint8(184), dots[1].Color.R)

	assert.Equal(t, 2, f.store.Count(), "the expired particle is retired")
}

func TestRepaint_EdgeLabels(t *testing.T) {
	m := domain.Metrics{BPS: 1500, EPS: 2, PPS: 10, IfName: "eth0", PeerIfName: "eth1"}

	t.Run("zoomed in", func(t *testing.T) {
		f := newFixture(t)
		f.graph = edgeGraph(t, m)
		f.tr.Zoom = 2
		d := f.drawer(t, domain.DefaultSettings())
		require.True(t, d.Repaint(false))

		var texts []string
		for _, c := range f.offscreen().Filter(record.OpFillText) {
			texts = append(texts, c.Text)
		}
		assert.Contains(t, texts, "1.5 k bps, 2 eps")
		assert.Contains(t, texts, "eth0")
		assert.Contains(t, texts, "eth1")
		assert.Contains(t, texts, "api")

		for _, r := range f.offscreen().Filter(record.OpFillRect) {
			if r.Rect.Height == 6 {
				assert.Equal(t, uint8(0xff), r.Color.R, "interface labels turn red on errors")
				assert.Zero(t, r.Color.G)
			}
		}
	})

	t.Run("zoomed out", func(t *testing.T) {
		f := newFixture(t)
		f.graph = edgeGraph(t, m)
		d := f.drawer(t, domain.DefaultSettings())
		require.True(t, d.Repaint(false))

		assert.Empty(t, f.offscreen().Filter(record.OpFillText))
	})

	t.Run("stats disabled", func(t *testing.T) {
		f := newFixture(t)
		f.graph = edgeGraph(t, m)
		f.tr.Zoom = 2
		s := domain.DefaultSettings()
		s.ShowConnectionStats = false
		d := f.drawer(t, s)
		require.True(t, d.Repaint(false))

		for _, c := range f.offscreen().Filter(record.OpFillText) {
			assert.NotContains(t, c.Text, "bps")
		}
	})
}

func TestInterfaceLabelPosition_Flips(t *testing.T) {
	const width = 12.0
	mid := domain.Point{X: 100, Y: 40}

	left := domain.Point{X: 20, Y: 40}
	right := domain.Point{X: 180, Y: 40}

	l := render.InterfaceLabelPosition(left, mid, width)
	r := render.InterfaceLabelPosition(right, mid, width)

	// The left label starts one width inside its anchor and extends inwards;
	// the right one mirrors it around its own anchor.
	assert.InDelta(t, width, l.X-left.X, 1e-9)
	assert.InDelta(t, width, right.X-(r.X+width), 1e-9)
	assert.InDelta(t, l.Y, r.Y, 1e-9)
}

func TestRepaint_NodeLabels(t *testing.T) {
	long := "checkout-service-frontend-01"

	render1 := func(selected []string) []string {
		f := newFixture(t)
		addNode(t, f.graph, domain.Node{ID: long}, domain.Point{X: 40, Y: 40})
		f.tr.Zoom = 2
		f.selected = selected
		d := f.drawer(t, domain.DefaultSettings())
		require.True(t, d.Repaint(false))

		var texts []string
		for _, c := range f.offscreen().Filter(record.OpFillText) {
			texts = append(texts, c.Text)
			assert.InDelta(t, 40+24, c.Point.Y, 1e-9)
		}
		return texts
	}

	assert.Equal(t, []string{"checkou...tend-01"}, render1(nil))
	assert.Equal(t, []string{long}, render1([]string{long}))
}

func TestRepaint_BaselineLabelColor(t *testing.T) {
	f := newFixture(t)
	addNode(t, f.graph, domain.Node{ID: "api", Metrics: domain.Metrics{BPS: 10, EPS: 1, PPS: 10}}, domain.Point{})
	f.tr.Zoom = 2
	s := domain.DefaultSettings()
	s.ShowBaselines = true
	d := f.drawer(t, s)

	f.clock.Advance(1500 * time.Millisecond)
	require.True(t, d.Repaint(false))
	require.True(t, d.Repaint(true))

	rects := f.offscreen().Filter(record.OpFillRect)
	require.Len(t, rects, 1)
	assert.Equal(t, uint8(0x73), rects[0].Color.G)

	rings := f.offscreen().Filter(record.OpStrokeCircle)
	require.Len(t, rings, 2)
	assert.Equal(t, []float64{10, 2}, rings[1].Dash)
	assert.InDelta(t, 6, rings[1].DashOffset, 1e-9)
	assert.Equal(t, uint8(184), rings[1].Color.R)
}

func TestRepaint_DashOffset(t *testing.T) {
	f := newFixture(t)
	d := f.drawer(t, domain.DefaultSettings())

	require.True(t, d.Repaint(false))
	want := float64(f.clock.Now().UnixMilli()%60000) / 250
	assert.InDelta(t, want, d.State().DashOffset, 1e-9)
}

func TestRepaint_DebugOverlay(t *testing.T) {
	f := newFixture(t)
	s := domain.DefaultSettings()
	s.ShowDebugInformation = true
	d := f.drawer(t, s)
	f.store.Append("x", domain.ParticleNormal, domain.Particle{StartTime: f.clock.Now(), Velocity: 1e-6}, 0)

	require.True(t, d.Repaint(false))
	require.True(t, d.Repaint(false))
	d.TickFPS()
	require.True(t, d.Repaint(false))

	texts := f.canvas.Visible().Filter(record.OpFillText)
	require.GreaterOrEqual(t, len(texts), 2)
	last := texts[len(texts)-2:]
	assert.Equal(t, "Frames per Second: 2", last[0].Text)
	assert.Equal(t, domain.Point{X: 10, Y: 12}, last[0].Point)
	assert.Equal(t, "Particles: 1", last[1].Text)
	assert.Equal(t, domain.Point{X: 10, Y: 24}, last[1].Point)
	assert.Equal(t, 1, d.State().Frames)
}

func TestRepaint_IconsAppearOnceLoaded(t *testing.T) {
	f := newFixture(t)
	addNode(t, f.graph, domain.Node{ID: "payments-java"}, domain.Point{X: 10, Y: 10})
	addNode(t, f.graph, domain.Node{ID: "queue", Kind: domain.NodeExternal, ExternalType: "JMS"}, domain.Point{X: 60, Y: 10})
	d := f.drawer(t, domain.DefaultSettings())

	require.True(t, d.Repaint(false))
	assert.Empty(t, f.offscreen().Filter(record.OpDrawImage))

	f.cache.Wait()
	require.True(t, d.Repaint(true))

	images := f.offscreen().Filter(record.OpDrawImage)
	require.Len(t, images, 2)
	assert.Equal(t, domain.Rect{X: 2, Y: 2, Width: 16, Height: 16}, images[0].Rect)
	assert.Equal(t, domain.Rect{X: 54, Y: 4, Width: 12, Height: 12}, images[1].Rect)
}

func TestSetSettings(t *testing.T) {
	f := newFixture(t)
	addNode(t, f.graph, domain.Node{ID: "queue", Kind: domain.NodeExternal, ExternalType: "web"}, domain.Point{})
	d := f.drawer(t, domain.DefaultSettings())
	require.True(t, d.Repaint(false))
	f.cache.Wait()
	require.True(t, d.Repaint(true))
	require.Len(t, f.offscreen().Filter(record.OpDrawImage), 1)

	s := domain.DefaultSettings()
	s.ShowBaselines = true
	require.NoError(t, d.SetSettings(s))
	require.True(t, d.Repaint(true))
	assert.Len(t, f.offscreen().Filter(record.OpDrawImage), 1, "unchanged icons keep the cache")

	s.ExternalIcons = []domain.ExternalIcon{{Name: "web", Filename: "globe"}}
	require.NoError(t, d.SetSettings(s))
	require.True(t, d.Repaint(true))
	assert.Empty(t, f.offscreen().Filter(record.OpDrawImage), "changed icons reset the cache")
	f.cache.Wait()

	bad := s
	bad.Style.DangerColor = "not a colour"
	require.Error(t, d.SetSettings(bad))
	assert.Equal(t, s.Style, d.Settings().Style)
}
