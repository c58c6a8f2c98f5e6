package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/trafficlens/internal/adapters/cas"
	"go.trai.ch/trafficlens/internal/adapters/raster"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.trai.ch/zerr"
)

// RenderOptions configures an offline render.
type RenderOptions struct {
	ViewOptions

	// Output receives the last frame as PNG; "-" writes to stdout.
	Output string
	// Frames is the number of frames to simulate, at least one.
	Frames int
	// Interval is the simulated time between frames.
	Interval time.Duration
	// FrameDir stores every frame content-addressed when set.
	FrameDir string
	// GIF receives an animated GIF of all frames when set.
	GIF string
	// FitSelection fits the view to the selection neighbourhood instead of
	// the whole graph.
	FitSelection bool
}

// Render draws the graph offline. Time is simulated, so particle animation
// is reproducible for a given start time.
//
//nolint:cyclop // orchestration function
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	if opts.Frames <= 0 {
		opts.Frames = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultFrameInterval
	}

	clock := clockwork.NewFakeClockAt(a.clock.Now())
	v, err := a.prepare(opts.ViewOptions, clock)
	if err != nil {
		return err
	}

	g, err := v.source()
	if err != nil {
		return zerr.Wrap(err, "failed to load graph")
	}
	res := v.scene.Publish(g)
	v.selection.Prune(res.Graph)

	var fitIDs []string
	if opts.FitSelection {
		fitIDs = domain.ComputeNeighborhood(res.Graph, v.selection.Selected()).IDs()
	}
	v.viewport.Fit(res.Graph, fitIDs)

	a.particles.Clear()
	engine := particles.NewEngine(a.particles, v.scene, clock, a.metrics, v.settings.Particles)

	// The first repaint requests every icon; waiting for the loads keeps the
	// icons in the frames that are kept.
	v.drawer.Repaint(true)
	a.assets.Wait()

	store, cleanup, err := a.frameStore(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	for i := range opts.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			clock.Advance(opts.Interval)
		}
		if err := a.renderFrame(ctx, v, engine, clock, store, i); err != nil {
			return err
		}
	}

	if err := a.writePNG(opts.Output, v.canvas); err != nil {
		return err
	}
	if opts.GIF != "" {
		if err := writeGIF(opts.GIF, store, opts.Interval); err != nil {
			return err
		}
	}

	a.logger.Info(fmt.Sprintf("rendered %d frames of %d nodes and %d edges",
		opts.Frames, res.Graph.NodeCount(), res.Graph.EdgeCount()))
	return nil
}

func (a *App) renderFrame(
	ctx context.Context,
	v *view,
	engine *particles.Engine,
	clock clockwork.Clock,
	store *cas.Store,
	index int,
) error {
	_, span := a.tracer.Start(ctx, "frame")
	defer span.End()

	if v.settings.Animate {
		engine.Tick(clock.Now())
	}
	v.drawer.Repaint(true)
	span.SetAttribute("index", index)
	span.SetAttribute("particles", engine.Count())

	if store == nil {
		return nil
	}
	key, err := store.Put(v.canvas.Frame())
	if err != nil {
		span.RecordError(err)
		return zerr.With(err, "frame", strconv.Itoa(index))
	}
	span.SetAttribute("key", key)
	return nil
}

// frameStore opens the frame store. A GIF without a frame directory is
// assembled in a temporary store that cleanup removes.
func (a *App) frameStore(opts RenderOptions) (*cas.Store, func(), error) {
	dir := opts.FrameDir
	cleanup := func() {}
	if dir == "" && opts.GIF != "" {
		tmp, err := os.MkdirTemp("", "trafficlens-frames-*")
		if err != nil {
			return nil, nil, zerr.Wrap(err, "failed to create temporary frame store")
		}
		dir = tmp
		cleanup = func() { _ = os.RemoveAll(tmp) }
	}
	if dir == "" {
		return nil, cleanup, nil
	}

	store, err := cas.NewStore(dir)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}

func (a *App) writePNG(path string, canvas *raster.Canvas) error {
	if path == "" {
		return nil
	}
	if path == "-" {
		return canvas.EncodePNG(a.stdout)
	}
	return writeAtomic(path, canvas.EncodePNG)
}

func writeGIF(path string, store *cas.Store, delay time.Duration) error {
	return writeAtomic(path, func(w io.Writer) error {
		return store.WriteGIF(w, delay)
	})
}

// writeAtomic writes through a temporary file in the target directory and
// renames it into place, so readers never observe a partial image.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output file"), "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return zerr.With(err, "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close output file"), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move output file"), "path", path)
	}
	return nil
}
