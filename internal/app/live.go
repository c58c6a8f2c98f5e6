package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/trafficlens/internal/adapters/detector"
	"go.trai.ch/trafficlens/internal/adapters/graphfile"
	"go.trai.ch/trafficlens/internal/adapters/linear"
	"go.trai.ch/trafficlens/internal/adapters/telemetry"
	"go.trai.ch/trafficlens/internal/adapters/tui"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const metricsShutdownTimeout = 2 * time.Second

// LiveOptions configures the live loop.
type LiveOptions struct {
	ViewOptions

	// Snapshot receives the current frame as PNG after every refresh.
	Snapshot        string
	FrameInterval   time.Duration
	RefreshInterval time.Duration
	// OutputMode is "auto", "dashboard" or "plain".
	OutputMode string
	// MetricsAddr serves Prometheus metrics when set.
	MetricsAddr string
	// LogFile receives log output while the dashboard owns the terminal.
	LogFile string
}

// dashboard is a ports.Dashboard that also receives telemetry messages.
type dashboard interface {
	ports.Dashboard
	telemetry.Sender
}

// Live runs the frame loop until ctx is cancelled or the user quits the
// dashboard.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Live(ctx context.Context, opts LiveOptions) error {
	v, err := a.prepare(opts.ViewOptions, a.clock)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := particles.NewEngine(a.particles, v.scene, a.clock, a.metrics, v.settings.Particles)
	loop := NewLoop(LoopDeps{
		Drawer:    v.drawer,
		Engine:    engine,
		Scene:     v.scene,
		Selection: v.selection,
		Viewport:  v.viewport,
		Source:    v.source,
		Logger:    a.logger,
		Clock:     a.clock,
		Reconfigure: func(s domain.Settings) {
			a.graphs.Configure(graphfile.OptionsFrom(s))
		},
	}, LoopConfig{
		FrameInterval:   opts.FrameInterval,
		RefreshInterval: opts.RefreshInterval,
	})
	if opts.Snapshot != "" {
		loop.deps.Snapshot = func() error {
			return writeAtomic(opts.Snapshot, v.canvas.EncodePNG)
		}
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	var dash dashboard
	if mode == detector.ModeDashboard {
		restore, err := a.redirectLogs(opts.LogFile)
		if err != nil {
			return err
		}
		defer restore()

		model := tui.NewModel(a.stderr, loop)
		teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		dash = tui.NewDashboard(&model, teaOpts...)
	} else {
		dash = linear.NewReporter(a.stdout)
	}
	loop.deps.Dashboard = dash

	tp := setupOTel(telemetry.NewBridge(dash))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()
	loop.deps.Tracer = telemetry.NewOTelTracerFrom(tp, telemetry.InstrumentationName)

	g, gctx := errgroup.WithContext(ctx)

	// Dashboard
	g.Go(func() error {
		defer cancel()
		if err := dash.Start(gctx); err != nil {
			return zerr.Wrap(err, "failed to start dashboard")
		}
		err := dash.Wait()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		return err
	})

	// Frame loop
	g.Go(func() error {
		defer func() {
			_ = dash.Stop()
		}()
		return loop.Run(gctx)
	})

	if opts.SettingsPath != "" {
		g.Go(func() error {
			return a.watcher.Watch(gctx, opts.SettingsPath, loop.ApplySettings)
		})
	}

	if opts.MetricsAddr != "" && a.metricsHandler != nil {
		g.Go(func() error {
			return a.serveMetrics(gctx, opts.MetricsAddr)
		})
	}

	return g.Wait()
}

// redirectLogs sends log output to path, or discards it when path is empty,
// until the returned function restores stderr.
func (a *App) redirectLogs(path string) (func(), error) {
	redirectable, ok := a.logger.(interface{ SetOutput(w io.Writer) })
	if !ok {
		return func() {}, nil
	}
	if path == "" {
		redirectable.SetOutput(io.Discard)
		return func() { redirectable.SetOutput(nil) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}
	redirectable.SetOutput(f)
	return func() {
		redirectable.SetOutput(nil)
		_ = f.Close()
	}, nil
}

func (a *App) serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metricsHandler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.logger.Info("serving metrics on " + addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", addr)
	}
	return nil
}

// setupOTel registers a tracer provider that reports every span to bridge.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	tp := telemetry.NewProvider(bridge)
	otel.SetTracerProvider(tp)
	return tp
}
