// Package domain contains the graph model, geometry and health maths of the traffic view.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// NodeKind distinguishes monitored hosts from endpoints outside the monitored estate.
type NodeKind string

const (
	// NodeInternal is a monitored host; it is drawn with a health donut.
	NodeInternal NodeKind = "INTERNAL"
	// NodeExternal is an unmonitored peer; it is drawn as a flat disc with a type icon.
	NodeExternal NodeKind = "EXTERNAL"
)

// Direction is the traffic direction of an edge relative to its source node.
type Direction string

const (
	// DirectionIn is traffic received by the source node.
	DirectionIn Direction = "in"
	// DirectionOut is traffic sent by the source node.
	DirectionOut Direction = "out"
)

// Node is a host or service in the traffic graph.
type Node struct {
	ID           string
	Kind         NodeKind
	ExternalType string
	Metrics      Metrics
	// Position is owned by the layout collaborator.
	Position Point
	// Placed is set once the layout has assigned a position.
	Placed bool
}

// Edge is a directional traffic link between two nodes.
type Edge struct {
	ID        string
	Source    string
	Target    string
	Direction Direction
	Metrics   Metrics
}

// EdgeID derives the identifier of an edge from its endpoints and direction.
func EdgeID(source, target string, dir Direction) string {
	return source + ":" + target + ":" + string(dir)
}

// Graph is a snapshot of the traffic graph. A graph handed to the renderer is
// never mutated again; refreshes produce a new graph through Merge.
type Graph struct {
	nodes     []Node
	nodeIndex map[string]int
	edges     []Edge
	edgeIndex map[string]int
	adjacency map[string][]string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
		adjacency: make(map[string][]string),
	}
}

// AddNode adds a node. It returns an error if a node with the same ID exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodeIndex[n.ID]; exists {
		return zerr.With(ErrNodeAlreadyExists, "node_id", n.ID)
	}
	if n.Kind == "" {
		n.Kind = NodeInternal
	}
	g.nodeIndex[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

// AddEdge adds an edge between two existing nodes. The edge ID is derived from
// its endpoints and direction.
func (g *Graph) AddEdge(e Edge) error {
	for _, endpoint := range []string{e.Source, e.Target} {
		if _, ok := g.nodeIndex[endpoint]; !ok {
			return zerr.With(ErrMissingEndpoint, "node_id", endpoint)
		}
	}
	if e.Direction != DirectionIn {
		e.Direction = DirectionOut
	}
	e.ID = EdgeID(e.Source, e.Target, e.Direction)
	if _, exists := g.edgeIndex[e.ID]; exists {
		return zerr.With(ErrEdgeAlreadyExists, "edge_id", e.ID)
	}

	g.edgeIndex[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacency[e.Source] = append(g.adjacency[e.Source], e.ID)
	if e.Target != e.Source {
		g.adjacency[e.Target] = append(g.adjacency[e.Target], e.ID)
	}
	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, bool) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes yields nodes in insertion order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges yields edges in insertion order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// EdgesOf yields the edges adjacent to a node.
func (g *Graph) EdgesOf(nodeID string) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, id := range g.adjacency[nodeID] {
			if !yield(g.edges[g.edgeIndex[id]]) {
				return
			}
		}
	}
}

// Endpoints returns the positions of an edge's source and target.
func (g *Graph) Endpoints(e Edge) (source, target Point, ok bool) {
	s, okS := g.Node(e.Source)
	t, okT := g.Node(e.Target)
	if !okS || !okT {
		return Point{}, Point{}, false
	}
	return s.Position, t.Position, true
}

// SetPosition places a node. It must only be called before the graph is published.
func (g *Graph) SetPosition(id string, p Point) bool {
	i, ok := g.nodeIndex[id]
	if !ok {
		return false
	}
	g.nodes[i].Position = p
	g.nodes[i].Placed = true
	return true
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.nodes = append([]Node(nil), g.nodes...)
	c.edges = append([]Edge(nil), g.edges...)
	for k, v := range g.nodeIndex {
		c.nodeIndex[k] = v
	}
	for k, v := range g.edgeIndex {
		c.edgeIndex[k] = v
	}
	for k, v := range g.adjacency {
		c.adjacency[k] = append([]string(nil), v...)
	}
	return c
}

// MergeResult describes how a refresh changed the graph.
type MergeResult struct {
	Graph        *Graph
	AddedNodes   []string
	RemovedNodes []string
	RemovedEdges []string
}

// Merge applies a refresh to the graph. Nodes and edges present in both are
// updated in place from next while surviving nodes keep their layout position;
// new elements are added and elements absent from next are dropped. The receiver
// is left untouched.
func (g *Graph) Merge(next *Graph) MergeResult {
	merged := next.Clone()
	res := MergeResult{Graph: merged}

	for i := range merged.nodes {
		n := &merged.nodes[i]
		if prev, ok := g.Node(n.ID); ok && prev.Placed && !n.Placed {
			n.Position = prev.Position
			n.Placed = true
		}
		if _, ok := g.nodeIndex[n.ID]; !ok {
			res.AddedNodes = append(res.AddedNodes, n.ID)
		}
	}
	for _, n := range g.nodes {
		if _, ok := merged.nodeIndex[n.ID]; !ok {
			res.RemovedNodes = append(res.RemovedNodes, n.ID)
		}
	}
	for _, e := range g.edges {
		if _, ok := merged.edgeIndex[e.ID]; !ok {
			res.RemovedEdges = append(res.RemovedEdges, e.ID)
		}
	}
	return res
}
