package domain

// InterfaceStat is one row of the interface table of a selected node.
type InterfaceStat struct {
	// Interface is the local interface name followed by the edge direction,
	// e.g. "eth0 (out)".
	Interface       string
	RemoteHost      string
	RemoteInterface string
	BPS             string
	EPS             string
	PPS             string
}

// SelectionStats summarizes a single selected node.
type SelectionStats struct {
	Node string
	Kind NodeKind
	// BPS, EPS and PPS are empty when the rate is unknown.
	BPS        string
	EPS        string
	PPS        string
	Interfaces []InterfaceStat
}

// ComputeSelectionStats returns the statistics of the selected node. It
// reports false unless exactly one element is selected and it is a node of g.
func ComputeSelectionStats(g *Graph, selected []string) (SelectionStats, bool) {
	if g == nil || len(selected) != 1 {
		return SelectionStats{}, false
	}
	n, ok := g.Node(selected[0])
	if !ok {
		return SelectionStats{}, false
	}

	stats := SelectionStats{
		Node: n.ID,
		Kind: n.Kind,
		BPS:  formatKnown(n.Metrics.BPS),
		EPS:  formatKnown(n.Metrics.EPS),
		PPS:  formatKnown(n.Metrics.PPS),
	}
	for e := range g.EdgesOf(n.ID) {
		remote := e.Target
		if e.Target == n.ID {
			remote = e.Source
		}
		stats.Interfaces = append(stats.Interfaces, InterfaceStat{
			Interface:       e.Metrics.IfName + " (" + string(e.Direction) + ")",
			RemoteHost:      remote,
			RemoteInterface: e.Metrics.PeerIfName,
			BPS:             formatKnown(e.Metrics.BPS),
			EPS:             formatKnown(e.Metrics.EPS),
			PPS:             formatKnown(e.Metrics.PPS),
		})
	}
	return stats, true
}

func formatKnown(v float64) string {
	if !Known(v) {
		return ""
	}
	return FormatSI(v)
}
