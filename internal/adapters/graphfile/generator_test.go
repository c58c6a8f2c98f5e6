package graphfile_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/internal/adapters/graphfile"
	"go.trai.ch/trafficlens/internal/core/domain"
)

func row(host, peer string, rx, tx graphfile.Rates) graphfile.Row {
	r := graphfile.NewRow(host, peer)
	r.Rx, r.Tx = rx, tx
	return r
}

func nodeIDs(g *domain.Graph) []string {
	var ids []string
	for n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	return ids
}

func edgeIDs(g *domain.Graph) []string {
	var ids []string
	for e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestGenerate_EdgesPerDirection(t *testing.T) {
	r := row("web", "db", graphfile.Rates{BPS: 100, EPS: 1, PPS: 10}, graphfile.Rates{BPS: 300, EPS: 0, PPS: 30})
	r.IfName, r.PeerIfName = "eth0", "eth1"

	g, err := graphfile.Generate([]graphfile.Row{r}, graphfile.Options{SumTimings: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"web", "db"}, nodeIDs(g))
	assert.Equal(t, []string{"web:db:in", "web:db:out"}, edgeIDs(g))

	in, ok := g.Edge("web:db:in")
	require.True(t, ok)
	assert.Equal(t, domain.Metrics{BPS: 100, EPS: 1, PPS: 10, IfName: "eth0", PeerIfName: "eth1"}, in.Metrics)

	out, _ := g.Edge("web:db:out")
	assert.InDelta(t, 300, out.Metrics.BPS, 0)
	assert.Equal(t, domain.DirectionOut, out.Direction)

	web, _ := g.Node("web")
	assert.Equal(t, domain.Metrics{BPS: 400, EPS: 1, PPS: 40}, web.Metrics)

	db, _ := g.Node("db")
	assert.Equal(t, domain.NodeInternal, db.Kind)
	assert.Equal(t, domain.UnknownMetrics(), db.Metrics)
}

func TestGenerate_Aggregation(t *testing.T) {
	rows := []graphfile.Row{
		row("web", "db", graphfile.Rates{BPS: 100, EPS: -1, PPS: 1}, graphfile.Rates{BPS: 100, EPS: -1, PPS: 1}),
		row("web", "cache", graphfile.Rates{BPS: 50, EPS: -1, PPS: 1}, graphfile.Rates{BPS: 150, EPS: -1, PPS: 1}),
	}

	summed, err := graphfile.Generate(rows, graphfile.Options{SumTimings: true})
	require.NoError(t, err)
	web, _ := summed.Node("web")
	assert.InDelta(t, 400, web.Metrics.BPS, 0)
	assert.InDelta(t, 4, web.Metrics.PPS, 0)
	assert.Equal(t, domain.Unknown, web.Metrics.EPS)

	averaged, err := graphfile.Generate(rows, graphfile.Options{SumTimings: false})
	require.NoError(t, err)
	web, _ = averaged.Node("web")
	assert.InDelta(t, 200, web.Metrics.BPS, 0)
	assert.InDelta(t, 2, web.Metrics.PPS, 0)
}

func TestGenerate_DropsSelfRowsAndMergesDuplicates(t *testing.T) {
	first := row("web", "db", graphfile.Rates{BPS: 1, EPS: -1, PPS: -1}, graphfile.Rates{BPS: 2, EPS: -1, PPS: -1})
	second := graphfile.NewRow("web", "db")
	second.Rx.EPS = 5
	second.IfName = "eth0"

	rows := []graphfile.Row{
		row("web", "web", graphfile.Rates{BPS: 999}, graphfile.Rates{BPS: 999}),
		first,
		second,
	}

	g, err := graphfile.Generate(rows, graphfile.Options{SumTimings: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"web:db:in", "web:db:out"}, edgeIDs(g))

	in, _ := g.Edge("web:db:in")
	assert.InDelta(t, 1, in.Metrics.BPS, 0)
	assert.InDelta(t, 5, in.Metrics.EPS, 0)
	assert.Equal(t, "eth0", in.Metrics.IfName)

	web, _ := g.Node("web")
	assert.InDelta(t, 3, web.Metrics.BPS, 0)
}

func TestGenerate_PeerlessRowMakesNodeOnly(t *testing.T) {
	g, err := graphfile.Generate([]graphfile.Row{
		row("batch", "", graphfile.Rates{BPS: 10, EPS: -1, PPS: -1}, graphfile.Rates{BPS: 10, EPS: -1, PPS: -1}),
	}, graphfile.Options{SumTimings: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"batch"}, nodeIDs(g))
	assert.Zero(t, g.EdgeCount())
}

func TestGenerate_FilterEmptyConnections(t *testing.T) {
	unknown := graphfile.Rates{BPS: -1, EPS: -1, PPS: -1}
	rows := []graphfile.Row{
		row("web", "db", graphfile.Rates{BPS: 10, EPS: -1, PPS: -1}, unknown),
		row("idle", "ghost", unknown, unknown),
	}

	kept, err := graphfile.Generate(rows, graphfile.Options{})
	require.NoError(t, err)
	assert.Len(t, edgeIDs(kept), 4)

	filtered, err := graphfile.Generate(rows, graphfile.Options{FilterEmptyConnections: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"web:db:in"}, edgeIDs(filtered))
	// Hosts of a quiet link stay visible.
	ids := nodeIDs(filtered)
	assert.True(t, slices.Contains(ids, "idle"))
	assert.True(t, slices.Contains(ids, "ghost"))
}

func TestCompose_DeclaredNodesOverlayRows(t *testing.T) {
	rows := []graphfile.Row{
		row("web", "postgres", graphfile.Rates{BPS: 10, EPS: 0, PPS: 1}, graphfile.Rates{BPS: 10, EPS: 0, PPS: 1}),
	}
	declared := []domain.Node{
		{ID: "postgres", Kind: domain.NodeExternal, ExternalType: "jdbc", Metrics: domain.UnknownMetrics()},
		{ID: "web", Kind: domain.NodeInternal, Metrics: domain.Metrics{BPS: domain.Unknown, EPS: 3, PPS: domain.Unknown},
			Position: domain.Point{X: 5, Y: 6}, Placed: true},
	}

	g, err := graphfile.Compose(rows, declared, nil, graphfile.Options{SumTimings: true})
	require.NoError(t, err)

	pg, _ := g.Node("postgres")
	assert.Equal(t, domain.NodeExternal, pg.Kind)
	assert.Equal(t, "jdbc", pg.ExternalType)

	web, _ := g.Node("web")
	assert.InDelta(t, 20, web.Metrics.BPS, 0)
	assert.InDelta(t, 3, web.Metrics.EPS, 0)
	assert.True(t, web.Placed)
	assert.Equal(t, domain.Point{X: 5, Y: 6}, web.Position)
}

func TestCompose_DeclaredEdgeNeedsEndpoints(t *testing.T) {
	_, err := graphfile.Compose(nil, nil, []domain.Edge{{Source: "a", Target: "b"}}, graphfile.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "edge endpoint not found")
}
