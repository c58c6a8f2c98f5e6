// Package graphfile turns traffic feed files into graphs.
package graphfile

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.GraphSource = (*Loader)(nil)

// Loader implements ports.GraphSource for YAML and JSON graph files.
type Loader struct {
	logger ports.Logger
	opts   atomic.Pointer[Options]
}

// NewLoader creates a loader using the options of the default settings.
func NewLoader(logger ports.Logger) *Loader {
	l := &Loader{logger: logger}
	l.Configure(OptionsFrom(domain.DefaultSettings()))
	return l
}

// Configure replaces the generator options used by later loads.
func (l *Loader) Configure(opts Options) {
	l.opts.Store(&opts)
}

// Options returns the current generator options.
func (l *Loader) Options() Options {
	return *l.opts.Load()
}

// Load reads the graph file at path.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read graph file"), "path", path)
	}

	g, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Info(fmt.Sprintf("loaded %d nodes and %d edges from %s", g.NodeCount(), g.EdgeCount(), path))
	return g, nil
}

// Parse decodes a graph file.
func (l *Loader) Parse(data []byte) (*domain.Graph, error) {
	var file graphFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse graph file")
	}

	var rows []Row
	for i, t := range file.Tables {
		tableRows, err := RowsFromTable(t.Columns, t.Rows)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidGraphFile.Error()), "table", i)
		}
		rows = append(rows, tableRows...)
	}
	for i, rec := range file.Rows {
		row, err := RowFromRecord(rec)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidGraphFile.Error()), "row", i)
		}
		rows = append(rows, row)
	}

	nodes := make([]domain.Node, 0, len(file.Nodes))
	for _, n := range file.Nodes {
		node, err := n.toDomain()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	edges := make([]domain.Edge, 0, len(file.Edges))
	for _, e := range file.Edges {
		edge, err := e.toDomain()
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	g, err := Compose(rows, nodes, edges, l.Options())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidGraphFile.Error())
	}
	return g, nil
}

func (n nodeDTO) toDomain() (domain.Node, error) {
	node := domain.Node{ID: n.ID, ExternalType: n.ExternalType, Metrics: metrics(n.BPS, n.EPS, n.PPS)}
	switch strings.ToLower(n.Type) {
	case "", "internal":
		node.Kind = domain.NodeInternal
	case "external":
		node.Kind = domain.NodeExternal
	default:
		return domain.Node{}, zerr.With(zerr.With(domain.ErrInvalidGraphFile, "node_id", n.ID), "type", n.Type)
	}
	if n.X != nil && n.Y != nil {
		node.Position = domain.Point{X: *n.X, Y: *n.Y}
		node.Placed = true
	}
	return node, nil
}

func (e edgeDTO) toDomain() (domain.Edge, error) {
	edge := domain.Edge{Source: e.Source, Target: e.Target, Metrics: metrics(e.BPS, e.EPS, e.PPS)}
	edge.Metrics.IfName = e.IfName
	edge.Metrics.PeerIfName = e.PeerIfName
	switch strings.ToLower(e.Direction) {
	case "in":
		edge.Direction = domain.DirectionIn
	case "", "out":
		edge.Direction = domain.DirectionOut
	default:
		return domain.Edge{}, zerr.With(zerr.With(domain.ErrInvalidGraphFile, "source", e.Source), "direction", e.Direction)
	}
	return edge, nil
}

func metrics(bps, eps, pps *float64) domain.Metrics {
	m := domain.UnknownMetrics()
	if bps != nil {
		m.BPS = *bps
	}
	if eps != nil {
		m.EPS = *eps
	}
	if pps != nil {
		m.PPS = *pps
	}
	return m
}
