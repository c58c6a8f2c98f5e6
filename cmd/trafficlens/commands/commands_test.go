package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/cmd/trafficlens/commands"
	"go.trai.ch/trafficlens/internal/app"
	"go.trai.ch/trafficlens/internal/build"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/zerr"
)

type mockApp struct {
	renderFunc   func(ctx context.Context, opts app.RenderOptions) error
	liveFunc     func(ctx context.Context, opts app.LiveOptions) error
	validateFunc func(opts app.ValidateOptions) (app.ValidationReport, error)
}

func (m *mockApp) Render(ctx context.Context, opts app.RenderOptions) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Live(ctx context.Context, opts app.LiveOptions) error {
	if m.liveFunc != nil {
		return m.liveFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Validate(opts app.ValidateOptions) (app.ValidationReport, error) {
	if m.validateFunc != nil {
		return m.validateFunc(opts)
	}
	return app.ValidationReport{}, nil
}

type logFlags struct {
	json, verbose bool
}

func (l *logFlags) SetJSON(enable bool)    { l.json = enable }
func (l *logFlags) SetVerbose(enable bool) { l.verbose = enable }

func TestCommands_Render(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RenderOptions
		mock := &mockApp{
			renderFunc: func(_ context.Context, opts app.RenderOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"render", "--graph", "g.yaml", "--width", "640", "--height", "480", "--pixel-ratio", "2",
			"--select", "a,b", "--frames", "12", "--interval", "50ms", "--gif", "out.gif",
			"--fit-selection", "-o", "-",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "g.yaml", captured.GraphPath)
		assert.Equal(t, 640, captured.Width)
		assert.Equal(t, 480, captured.Height)
		assert.InDelta(t, 2.0, captured.PixelRatio, 1e-9)
		assert.Equal(t, []string{"a", "b"}, captured.Select)
		assert.Equal(t, 12, captured.Frames)
		assert.Equal(t, 50*time.Millisecond, captured.Interval)
		assert.Equal(t, "out.gif", captured.GIF)
		assert.True(t, captured.FitSelection)
		assert.Equal(t, "-", captured.Output)
		assert.False(t, captured.Demo)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(context.Context, app.RenderOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"render", "--demo"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorContains(t, err, "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"render", "graph.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Live(t *testing.T) {
	t.Run("ci forces plain output", func(t *testing.T) {
		var captured app.LiveOptions
		mock := &mockApp{
			liveFunc: func(_ context.Context, opts app.LiveOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"live", "--demo", "--ci", "--fps", "20", "--refresh", "2s",
			"--metrics-addr", ":9090", "--snapshot", "live.png", "--log-file", "live.log",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Demo)
		assert.Equal(t, "plain", captured.OutputMode)
		assert.Equal(t, 50*time.Millisecond, captured.FrameInterval)
		assert.Equal(t, 2*time.Second, captured.RefreshInterval)
		assert.Equal(t, ":9090", captured.MetricsAddr)
		assert.Equal(t, "live.png", captured.Snapshot)
		assert.Equal(t, "live.log", captured.LogFile)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.LiveOptions
		mock := &mockApp{
			liveFunc: func(_ context.Context, opts app.LiveOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"live", "-g", "graph.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "auto", captured.OutputMode)
		assert.Equal(t, time.Second/30, captured.FrameInterval)
		assert.Equal(t, app.DefaultRefreshInterval, captured.RefreshInterval)
		assert.Equal(t, ".", captured.AssetDir)
	})
}

func TestCommands_Validate(t *testing.T) {
	t.Run("prints the report", func(t *testing.T) {
		mock := &mockApp{
			validateFunc: func(opts app.ValidateOptions) (app.ValidationReport, error) {
				assert.Equal(t, "graph.yaml", opts.GraphPath)
				return app.ValidationReport{Settings: domain.DefaultSettings(), Nodes: 3, Edges: 2}, nil
			},
		}

		cli := commands.New(mock, nil)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"validate", "-g", "graph.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "settings ok: 2 service icons, 4 external icons")
		assert.Contains(t, buf.String(), "graph ok: 3 nodes, 2 edges")
	})

	t.Run("lists missing assets", func(t *testing.T) {
		mock := &mockApp{
			validateFunc: func(app.ValidateOptions) (app.ValidationReport, error) {
				return app.ValidationReport{MissingAssets: []string{"default.png"}},
					zerr.With(domain.ErrMissingAssets, "assets", "default.png")
			},
		}

		cli := commands.New(mock, nil)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"validate"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrMissingAssets)
		assert.Contains(t, buf.String(), "missing asset: default.png")
	})
}

func TestCommands_SettingsDefaultFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()
	require.NoError(t, os.Chdir(t.TempDir()))
	require.NoError(t, os.WriteFile("trafficlens.yaml", []byte("animate: false\n"), 0o600))

	var captured app.ValidateOptions
	mock := &mockApp{
		validateFunc: func(opts app.ValidateOptions) (app.ValidationReport, error) {
			captured = opts
			return app.ValidationReport{}, nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"validate"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "trafficlens.yaml", captured.SettingsPath)
}

func TestCommands_LogFlags(t *testing.T) {
	log := &logFlags{}
	cli := commands.New(&mockApp{}, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--log-json", "--verbose", "version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
	assert.True(t, log.verbose)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}
