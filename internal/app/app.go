// Package app implements the application layer for trafficlens.
package app

import (
	"io"
	"math"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/trafficlens/internal/adapters/demo"
	"go.trai.ch/trafficlens/internal/adapters/fs"
	"go.trai.ch/trafficlens/internal/adapters/graphfile"
	"go.trai.ch/trafficlens/internal/adapters/layout"
	"go.trai.ch/trafficlens/internal/adapters/raster"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/trafficlens/internal/engine/assets"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.trai.ch/trafficlens/internal/engine/render"
	"go.trai.ch/zerr"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// App represents the main application logic.
type App struct {
	logger    ports.Logger
	settings  ports.SettingsLoader
	watcher   ports.SettingsWatcher
	graphs    *graphfile.Loader
	assets    *assets.Cache
	particles *particles.Store
	metrics   ports.RenderMetrics
	tracer    ports.Tracer

	metricsHandler http.Handler
	clock          clockwork.Clock
	teaOptions     []tea.ProgramOption
	stdout         io.Writer
	stderr         io.Writer
}

// New creates a new App instance.
func New(
	log ports.Logger,
	settings ports.SettingsLoader,
	watcher ports.SettingsWatcher,
	graphs *graphfile.Loader,
	cache *assets.Cache,
	store *particles.Store,
	m ports.RenderMetrics,
	tracer ports.Tracer,
) *App {
	return &App{
		logger:    log,
		settings:  settings,
		watcher:   watcher,
		graphs:    graphs,
		assets:    cache,
		particles: store,
		metrics:   m,
		tracer:    tracer,
		clock:     clockwork.NewRealClock(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Close cancels icon loads still in flight and waits for them to return.
func (a *App) Close() {
	a.assets.Close()
}

// WithMetricsHandler sets the handler served on the live --metrics-addr.
func (a *App) WithMetricsHandler(h http.Handler) *App {
	a.metricsHandler = h
	return a
}

// WithClock replaces the wall clock.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithTeaOptions adds bubbletea program options to the live dashboard.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects what the app prints; nil keeps the current writer.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	if stdout != nil {
		a.stdout = stdout
	}
	if stderr != nil {
		a.stderr = stderr
	}
	return a
}

// ViewOptions describe what is drawn and at which size.
type ViewOptions struct {
	SettingsPath string
	GraphPath    string
	Demo         bool
	AssetDir     string
	Width        int
	Height       int
	PixelRatio   float64
	Select       []string
}

func (o ViewOptions) withDefaults() ViewOptions {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.PixelRatio <= 0 {
		o.PixelRatio = 1
	}
	if o.AssetDir == "" {
		o.AssetDir = "."
	}
	return o
}

// view is the scene state shared by the render and live commands.
type view struct {
	settings  domain.Settings
	scene     *Scene
	selection *Selection
	viewport  *layout.Viewport
	canvas    *raster.Canvas
	drawer    *render.Drawer
	source    GraphProvider
}

func (a *App) loadSettings(path string) (domain.Settings, error) {
	s, err := a.settings.Load(path)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load settings")
	}
	a.graphs.Configure(graphfile.OptionsFrom(*s))
	return *s, nil
}

// source picks the graph provider: demo data when requested by flag or
// settings, the graph file otherwise.
func (a *App) source(opts ViewOptions, settings domain.Settings, clock clockwork.Clock) (GraphProvider, error) {
	if opts.Demo || settings.ShowDummyData {
		gen := demo.NewGenerator(clock)
		return func() (*domain.Graph, error) {
			return gen.Graph(a.graphs.Options())
		}, nil
	}
	if opts.GraphPath == "" {
		return nil, domain.ErrNoGraphSource
	}
	path := opts.GraphPath
	return func() (*domain.Graph, error) {
		return a.graphs.Load(path)
	}, nil
}

func (a *App) prepare(opts ViewOptions, clock clockwork.Clock) (*view, error) {
	opts = opts.withDefaults()

	settings, err := a.loadSettings(opts.SettingsPath)
	if err != nil {
		return nil, err
	}
	source, err := a.source(opts, settings, clock)
	if err != nil {
		return nil, err
	}

	canvas, err := raster.NewCanvas(
		int(math.Round(float64(opts.Width)*opts.PixelRatio)),
		int(math.Round(float64(opts.Height)*opts.PixelRatio)),
		render.BackgroundColor(),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create canvas")
	}

	v := &view{
		settings:  settings,
		scene:     NewScene(layout.NewCircle()),
		selection: NewSelection(opts.Select...),
		viewport:  layout.NewViewport(opts.Width, opts.Height, opts.PixelRatio),
		canvas:    canvas,
		source:    source,
	}

	v.drawer, err = render.NewDrawer(render.Deps{
		Canvas:    canvas,
		Scene:     v.scene,
		Selection: v.selection,
		Viewport:  v.viewport,
		Particles: a.particles,
		Assets:    a.assets,
		Resolver:  fs.NewResolver(opts.AssetDir),
		Logger:    a.logger,
		Metrics:   a.metrics,
		Clock:     clock,
	}, settings)
	if err != nil {
		return nil, err
	}
	return v, nil
}
