package scene

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/neuroviz-io/neuroviz/pkg/graph"
)

func testGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: 0, X: 1, Y: 2, Z: 3, Area: 7},
			{ID: 1, X: 4, Y: 5, Z: 6, Area: 9},
		},
		Edges: []graph.Edge{
			{Source: 0, Target: 1},
			{Source: 1, Target: 1},
		},
		HasAreas: true,
	}
}

// TestBuild_PointAlignment: point i is node i's position. Edges reference
// nodes by this index, so the alignment is load-bearing.
func TestBuild_PointAlignment(t *testing.T) {
	g := testGraph()

	s, err := Build(g, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(s.Points) != 2 {
		t.Fatalf("Got %d points, want 2", len(s.Points))
	}
	for i, n := range g.Nodes {
		if s.Points[i] != (Point{X: n.X, Y: n.Y, Z: n.Z}) {
			t.Errorf("Points[%d] = %+v, want node %d position", i, s.Points[i], i)
		}
	}
	if s.ID == "" {
		t.Error("Scene.ID is empty")
	}
}

func TestBuild_EdgeCells(t *testing.T) {
	s, err := Build(testGraph(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	poly := s.PolyLineCells()
	lists := s.IDListCells()
	if len(poly) != 2 || len(lists) != 2 {
		t.Fatalf("Got %d poly cells and %d id-list cells, want 2 each", len(poly), len(lists))
	}

	// Both encodings describe the same segments.
	for i := range poly {
		if poly[i][0] != lists[i][0] || poly[i][1] != lists[i][1] {
			t.Errorf("Cell %d: poly %v vs id-list %v", i, poly[i], lists[i])
		}
		if len(lists[i]) != 2 {
			t.Errorf("IDListCells[%d] has %d ids, want 2", i, len(lists[i]))
		}
	}

	if poly[0] != [2]int{0, 1} || poly[1] != [2]int{1, 1} {
		t.Errorf("PolyLineCells() = %v, want [[0 1] [1 1]]", poly)
	}
}

func TestBuild_Scalars(t *testing.T) {
	g := testGraph()
	attrs, err := graph.AreaAttributes(g)
	if err != nil {
		t.Fatalf("AreaAttributes failed: %v", err)
	}

	s, err := Build(g, attrs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.Scalars == nil {
		t.Fatal("Scalars is nil")
	}
	if !reflect.DeepEqual(s.Scalars.Values, []int{7, 9}) {
		t.Errorf("Scalars.Values = %v, want [7 9]", s.Scalars.Values)
	}
	if s.Scalars.Min != 0 || s.Scalars.Max != 47 {
		t.Errorf("Scalar range = [%d, %d], want [0, 47]", s.Scalars.Min, s.Scalars.Max)
	}

	// The scene owns its copy of the scalar values.
	attrs.Values[0] = 99
	if s.Scalars.Values[0] != 7 {
		t.Error("Scene scalars alias the attribute set")
	}
}

func TestBuild_ScalarLengthMismatch(t *testing.T) {
	g := testGraph()
	attrs := &graph.AttributeSet{Name: "Areas", Values: []int{1}}

	if _, err := Build(g, attrs); err == nil {
		t.Fatal("Build accepted a misaligned scalar array")
	}
}

func TestWebPayload(t *testing.T) {
	g := testGraph()
	attrs, _ := graph.AreaAttributes(g)
	s, err := Build(g, attrs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ws := s.WebPayload()
	if len(ws.Nodes) != 2 || len(ws.Edges) != 2 {
		t.Fatalf("Payload has %d nodes and %d edges, want 2 each", len(ws.Nodes), len(ws.Edges))
	}
	if ws.Nodes[0].Area == nil || *ws.Nodes[0].Area != 7 {
		t.Errorf("Nodes[0].Area = %v, want 7", ws.Nodes[0].Area)
	}
	if ws.Edges[1].From != 1 || ws.Edges[1].To != 1 {
		t.Errorf("Edges[1] = %+v, want self-loop on 1", ws.Edges[1])
	}
	if ws.ScalarRange == nil || ws.ScalarRange.Max != 47 {
		t.Errorf("ScalarRange = %+v, want max 47", ws.ScalarRange)
	}
}

func TestWebPayload_FlatColor(t *testing.T) {
	s, err := Build(testGraph(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ws := s.WebPayload()
	if ws.ScalarRange != nil {
		t.Errorf("ScalarRange = %+v, want nil for flat color", ws.ScalarRange)
	}
	if ws.Nodes[0].Area != nil {
		t.Errorf("Nodes[0].Area = %v, want nil", ws.Nodes[0].Area)
	}
}

func TestWriteJSON(t *testing.T) {
	s, err := Build(testGraph(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := s.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded WebScene
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.ID != s.ID {
		t.Errorf("Decoded ID = %q, want %q", decoded.ID, s.ID)
	}
}

func TestDefaultRenderOptions(t *testing.T) {
	opts := DefaultRenderOptions()
	if opts.Glyph != GlyphVertex || opts.Edges != EdgeTubes {
		t.Errorf("Defaults = %q glyphs, %q edges; want vertex and tubes", opts.Glyph, opts.Edges)
	}
	if opts.Table.Colors != 256 {
		t.Errorf("Lookup table colors = %d, want 256", opts.Table.Colors)
	}
}
