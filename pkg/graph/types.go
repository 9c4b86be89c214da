package graph

import "iter"

// Node is one simulated unit. IDs are dense and contiguous starting at 0,
// assigned by position-file parse order; no id is assigned twice.
type Node struct {
	ID      int
	X, Y, Z float64
	Area    int // meaningful only when the graph carries areas
}

// Edge is one directed synaptic connection between two node ids.
type Edge struct {
	Source int
	Target int
}

// Graph is the assembled node and edge structure handed to rendering. It is
// built once per ingestion and never mutated afterwards.
type Graph struct {
	Nodes    []Node
	Edges    []Edge
	HasAreas bool
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of edges, counting parallel edges.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// EdgePairs returns a restartable iterator over (source, target) id pairs in
// assembly order: adjacency key first-seen order, then per-key file order.
func (g *Graph) EdgePairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, e := range g.Edges {
			if !yield(e.Source, e.Target) {
				return
			}
		}
	}
}
