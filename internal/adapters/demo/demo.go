// Package demo generates a fixed traffic topology with metrics that drift
// over time, for trying the renderer without a data feed.
package demo

import (
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/trafficlens/internal/adapters/graphfile"
	"go.trai.ch/trafficlens/internal/core/domain"
)

type link struct {
	host, peer     string
	ifName, peerIf string
	bps, pps       float64
	errorShare     float64
	burstEverySecs float64
}

var topology = []link{
	{host: "edge-gateway", peer: "checkout-service", ifName: "eth0", peerIf: "eth1", bps: 2.4e6, pps: 1800},
	{host: "checkout-service", peer: "payments-java", ifName: "eth1", peerIf: "eth0", bps: 8.5e5, pps: 600, errorShare: 0.02},
	{host: "checkout-service", peer: "inventory", ifName: "eth1", peerIf: "eth0", bps: 3.2e5, pps: 420},
	{host: "inventory", peer: "orders-db", ifName: "eth0", peerIf: "bond0", bps: 1.1e6, pps: 950},
	{host: "payments-java", peer: "bank-api", ifName: "eth0", peerIf: "", bps: 9.0e4, pps: 75, burstEverySecs: 20},
	{host: "edge-gateway", peer: "spok-telemetry", ifName: "eth2", peerIf: "eth0", bps: 4.0e4, pps: 30},
	{host: "spok-telemetry", peer: "metrics-queue", ifName: "eth0", peerIf: "eth0", bps: 2.5e4, pps: 50},
}

var externals = []domain.Node{
	{ID: "orders-db", Kind: domain.NodeExternal, ExternalType: "jdbc"},
	{ID: "bank-api", Kind: domain.NodeExternal, ExternalType: "http"},
	{ID: "metrics-queue", Kind: domain.NodeExternal, ExternalType: "jms"},
}

// Generator produces demo snapshots.
type Generator struct {
	clock clockwork.Clock
	start time.Time
}

// NewGenerator creates a generator whose metrics drift from the clock's now.
func NewGenerator(clock clockwork.Clock) *Generator {
	return &Generator{clock: clock, start: clock.Now()}
}

// Rows returns the feed rows at the current time.
func (g *Generator) Rows() []graphfile.Row {
	elapsed := g.clock.Since(g.start).Seconds()
	rows := make([]graphfile.Row, 0, len(topology))
	for _, l := range topology {
		phase := float64(xxhash.Sum64String(l.host+"|"+l.peer)%1000) / 1000 * 2 * math.Pi
		wave := 1 + 0.35*math.Sin(elapsed/7+phase)

		share := l.errorShare
		if l.burstEverySecs > 0 && math.Mod(elapsed+phase, l.burstEverySecs) < l.burstEverySecs/4 {
			share = 0.4
		}

		r := graphfile.NewRow(l.host, l.peer)
		r.IfName, r.PeerIfName = l.ifName, l.peerIf
		r.Rx = rates(l.bps*0.6*wave, l.pps*0.6*wave, share)
		r.Tx = rates(l.bps*0.4*(2-wave), l.pps*0.4*(2-wave), share/2)
		rows = append(rows, r)
	}
	return rows
}

func rates(bps, pps, errorShare float64) graphfile.Rates {
	return graphfile.Rates{
		BPS: math.Round(bps),
		EPS: math.Round(pps*errorShare*10) / 10,
		PPS: math.Round(pps*10) / 10,
	}
}

// Graph returns the demo graph at the current time.
func (g *Generator) Graph(opts graphfile.Options) (*domain.Graph, error) {
	return graphfile.Compose(g.Rows(), externalNodes(), nil, opts)
}

func externalNodes() []domain.Node {
	nodes := make([]domain.Node, len(externals))
	for i, n := range externals {
		n.Metrics = domain.UnknownMetrics()
		nodes[i] = n
	}
	return nodes
}
