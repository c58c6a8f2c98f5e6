package app

import (
	"bytes"
	"io"
	"testing"

	"go.trai.ch/trafficlens/internal/adapters/config"
	"go.trai.ch/trafficlens/internal/adapters/fs"
	"go.trai.ch/trafficlens/internal/adapters/graphfile"
	"go.trai.ch/trafficlens/internal/adapters/metrics"
	"go.trai.ch/trafficlens/internal/adapters/telemetry"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports/mocks"
	"go.trai.ch/trafficlens/internal/engine/assets"
	"go.trai.ch/trafficlens/internal/engine/particles"
	"go.uber.org/mock/gomock"
)

// newTestApp wires an App from real adapters with a silent logger. The
// returned buffer collects what the app prints to stdout.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	m := metrics.Noop{}
	cache := assets.NewCache(fs.NewImageLoader(), log, m)
	t.Cleanup(cache.Close)

	loader := config.NewLoader(log)
	a := New(
		log,
		loader,
		config.NewWatcher(loader, log),
		graphfile.NewLoader(log),
		cache,
		particles.NewStore(),
		m,
		telemetry.NewNoOpTracer(),
	)

	var stdout bytes.Buffer
	a.WithOutput(&stdout, io.Discard)
	return a, &stdout
}

// chain builds a graph a -> b -> ... over ids.
func chain(t *testing.T, ids ...string) *domain.Graph {
	t.Helper()

	g := domain.NewGraph()
	for _, id := range ids {
		if err := g.AddNode(domain.Node{ID: id, Kind: domain.NodeInternal, Metrics: domain.UnknownMetrics()}); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i < len(ids); i++ {
		m := domain.UnknownMetrics()
		m.BPS = 1000
		if err := g.AddEdge(domain.Edge{Source: ids[i-1], Target: ids[i], Metrics: m}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}
