package graphfile

import (
	"go.trai.ch/trafficlens/internal/core/domain"
)

// Options controls how rows are turned into a graph.
type Options struct {
	// SumTimings aggregates node rates by sum; otherwise by mean per row.
	SumTimings bool
	// FilterEmptyConnections drops edges without a known rate, and then nodes
	// that are neither connected nor carry a known rate.
	FilterEmptyConnections bool
}

// OptionsFrom extracts the generator options from the settings.
func OptionsFrom(s domain.Settings) Options {
	return Options{SumTimings: s.SumTimings, FilterEmptyConnections: s.FilterEmptyConnections}
}

// Generate builds a graph from feed rows. Rows are merged per host and peer,
// rows where a host talks to itself are dropped, every row yields an "in" edge
// carrying its rx rates and an "out" edge carrying its tx rates, and peers that
// have no rows of their own become internal nodes with unknown rates.
func Generate(rows []Row, opts Options) (*domain.Graph, error) {
	return Compose(rows, nil, nil, opts)
}

// Compose generates from rows like Generate and then overlays explicitly
// declared nodes and edges. A declared node that also appears in the rows
// keeps the row rates it does not redefine.
func Compose(rows []Row, declaredNodes []domain.Node, declaredEdges []domain.Edge, opts Options) (*domain.Graph, error) {
	var filtered []Row
	for _, r := range MergeRows(rows) {
		if r.Host == "" || r.Host == r.Peer {
			continue
		}
		filtered = append(filtered, r)
	}

	nodes := overlayNodes(createNodes(filtered, opts), declaredNodes)
	edges := append(createEdges(filtered), declaredEdges...)
	if opts.FilterEmptyConnections {
		nodes, edges = filterEmpty(nodes, edges)
	}

	g := domain.NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func overlayNodes(nodes, declared []domain.Node) []domain.Node {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}
	for _, d := range declared {
		i, ok := index[d.ID]
		if !ok {
			index[d.ID] = len(nodes)
			nodes = append(nodes, d)
			continue
		}
		n := &nodes[i]
		n.Kind = d.Kind
		n.ExternalType = d.ExternalType
		if domain.Known(d.Metrics.BPS) {
			n.Metrics.BPS = d.Metrics.BPS
		}
		if domain.Known(d.Metrics.EPS) {
			n.Metrics.EPS = d.Metrics.EPS
		}
		if domain.Known(d.Metrics.PPS) {
			n.Metrics.PPS = d.Metrics.PPS
		}
		if d.Placed {
			n.Position = d.Position
			n.Placed = true
		}
	}
	return nodes
}

func createNodes(rows []Row, opts Options) []domain.Node {
	var order []string
	groups := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := groups[r.Host]; !ok {
			order = append(order, r.Host)
		}
		groups[r.Host] = append(groups[r.Host], r)
	}

	nodes := make([]domain.Node, 0, len(order))
	for _, host := range order {
		nodes = append(nodes, domain.Node{
			ID:      host,
			Kind:    domain.NodeInternal,
			Metrics: aggregate(groups[host], opts.SumTimings),
		})
	}

	for _, r := range rows {
		if !r.Peered() {
			continue
		}
		if _, ok := groups[r.Peer]; ok {
			continue
		}
		groups[r.Peer] = nil
		nodes = append(nodes, domain.Node{
			ID:      r.Peer,
			Kind:    domain.NodeInternal,
			Metrics: domain.UnknownMetrics(),
		})
	}
	return nodes
}

// aggregate combines rx+tx of every row. A rate stays unknown when no row
// knows either direction of it.
func aggregate(rows []Row, sum bool) domain.Metrics {
	pick := func(f func(Rates) float64) float64 {
		total, n := 0.0, 0
		for _, r := range rows {
			rx, tx := f(r.Rx), f(r.Tx)
			if !domain.Known(rx) && !domain.Known(tx) {
				continue
			}
			total += max(rx, 0) + max(tx, 0)
			n++
		}
		switch {
		case n == 0:
			return domain.Unknown
		case sum:
			return total
		default:
			return total / float64(n)
		}
	}
	return domain.Metrics{
		BPS: pick(func(r Rates) float64 { return r.BPS }),
		EPS: pick(func(r Rates) float64 { return r.EPS }),
		PPS: pick(func(r Rates) float64 { return r.PPS }),
	}
}

func createEdges(rows []Row) []domain.Edge {
	edges := make([]domain.Edge, 0, 2*len(rows))
	for _, r := range rows {
		if !r.Peered() {
			continue
		}
		for _, d := range []struct {
			dir   domain.Direction
			rates Rates
		}{{domain.DirectionIn, r.Rx}, {domain.DirectionOut, r.Tx}} {
			edges = append(edges, domain.Edge{
				Source:    r.Host,
				Target:    r.Peer,
				Direction: d.dir,
				Metrics: domain.Metrics{
					BPS:        d.rates.BPS,
					EPS:        d.rates.EPS,
					PPS:        d.rates.PPS,
					IfName:     r.IfName,
					PeerIfName: r.PeerIfName,
				},
			})
		}
	}
	return edges
}

// filterEmpty keeps nodes that were connected before filtering, matching how
// a quiet link still shows both of its hosts.
func filterEmpty(nodes []domain.Node, edges []domain.Edge) ([]domain.Node, []domain.Edge) {
	connected := make(map[string]bool)
	for _, e := range edges {
		connected[e.Source] = true
		connected[e.Target] = true
	}

	keptEdges := edges[:0:0]
	for _, e := range edges {
		if !e.Metrics.Empty() {
			keptEdges = append(keptEdges, e)
		}
	}

	keptNodes := nodes[:0:0]
	for _, n := range nodes {
		if connected[n.ID] || !n.Metrics.Empty() {
			keptNodes = append(keptNodes, n)
		}
	}
	return keptNodes, keptEdges
}
