// Package scene translates an assembled graph into the plain primitives a
// 3D rendering engine consumes: an ordered point list, 2-point edge cells,
// and an optional per-point scalar array with a color range. It carries no
// rendering-library types; engines plug in behind the Renderer interface.
package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neuroviz-io/neuroviz/pkg/graph"
)

// Point is one 3D coordinate.
type Point struct {
	X, Y, Z float64
}

// LineCell is one 2-point edge cell referencing endpoint indices into the
// scene's point list.
type LineCell struct {
	A, B int
}

// ScalarArray is a per-point integer scalar with its display range. The
// values are index-aligned with the point list.
type ScalarArray struct {
	Name   string
	Values []int
	Min    int
	Max    int
}

// Scene is the renderable translation of a graph. Points are index-aligned
// with node ids: point i is node i's position. Edges reference points purely
// by that index, so the point order must never change after construction.
type Scene struct {
	ID      string
	Points  []Point
	Edges   []LineCell
	Scalars *ScalarArray // nil means flat-color rendering
}

// Build constructs a Scene from a graph and an optional attribute set. The
// attribute set, when present, must be aligned with the graph's nodes.
func Build(g *graph.Graph, attrs *graph.AttributeSet) (*Scene, error) {
	if attrs != nil && len(attrs.Values) != len(g.Nodes) {
		return nil, fmt.Errorf("scalar array length %d does not match %d nodes",
			len(attrs.Values), len(g.Nodes))
	}

	s := &Scene{
		ID:     uuid.NewString(),
		Points: make([]Point, len(g.Nodes)),
		Edges:  make([]LineCell, 0, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		s.Points[i] = Point{X: n.X, Y: n.Y, Z: n.Z}
	}
	for src, dst := range g.EdgePairs() {
		s.Edges = append(s.Edges, LineCell{A: src, B: dst})
	}

	if attrs != nil {
		values := make([]int, len(attrs.Values))
		copy(values, attrs.Values)
		s.Scalars = &ScalarArray{
			Name:   attrs.Name,
			Values: values,
			Min:    attrs.Min,
			Max:    attrs.Max,
		}
	}
	return s, nil
}

// PolyLineCells returns the edges as explicit endpoint pairs, the poly-line
// cell encoding.
func (s *Scene) PolyLineCells() [][2]int {
	cells := make([][2]int, len(s.Edges))
	for i, e := range s.Edges {
		cells[i] = [2]int{e.A, e.B}
	}
	return cells
}

// IDListCells returns the edges as indefinite-length id lists restricted to
// two ids each, the generic cell encoding. Both encodings describe the same
// line segments.
func (s *Scene) IDListCells() [][]int {
	cells := make([][]int, len(s.Edges))
	for i, e := range s.Edges {
		cells[i] = []int{e.A, e.B}
	}
	return cells
}
