package graph

import (
	"github.com/neuroviz-io/neuroviz/pkg/simio"
)

// AssembleOptions configures graph assembly.
type AssembleOptions struct {
	// WithAreas marks the nodes' Area fields as meaningful. It must match
	// whether the position records were parsed with area extraction.
	WithAreas bool

	// Strict rejects edges whose endpoints fall outside [0, nodeCount) with
	// a ConsistencyError. Off by default: the legacy pipeline never checked
	// bounds, so unchecked assembly is the compatible mode.
	Strict bool
}

// Assemble combines parse-order position records and a connection adjacency
// into a Graph. Node i takes its coordinates from record i. Edges are the
// adjacency flattened in key first-seen order, then per-key file order, with
// self-loops and parallel edges preserved verbatim. An empty or nil
// adjacency yields a graph with zero edges.
func Assemble(records []simio.PositionRecord, adj *simio.Adjacency, opts AssembleOptions) (*Graph, error) {
	g := &Graph{
		Nodes:    make([]Node, len(records)),
		HasAreas: opts.WithAreas,
	}
	for i, rec := range records {
		g.Nodes[i] = Node{ID: i, X: rec.X, Y: rec.Y, Z: rec.Z, Area: rec.Area}
	}

	if adj == nil {
		return g, nil
	}

	g.Edges = make([]Edge, 0, adj.EdgeCount())
	for _, key := range adj.Keys() {
		targets, _ := adj.Targets(key)
		for _, target := range targets {
			if opts.Strict {
				if err := checkBounds(key, len(g.Nodes), len(g.Edges)); err != nil {
					return nil, err
				}
				if err := checkBounds(target, len(g.Nodes), len(g.Edges)); err != nil {
					return nil, err
				}
			}
			g.Edges = append(g.Edges, Edge{Source: key, Target: target})
		}
	}
	return g, nil
}

func checkBounds(id, nodeCount, edgeIndex int) error {
	if id < 0 || id >= nodeCount {
		return &ConsistencyError{NodeID: id, NodeCount: nodeCount, EdgeIndex: edgeIndex}
	}
	return nil
}
