package scene

import (
	"encoding/json"
	"io"
)

// WebNode is one point in the browser-viewer payload.
type WebNode struct {
	ID   int     `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Area *int    `json:"area,omitempty"`
}

// WebEdge is one connection in the browser-viewer payload.
type WebEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WebScalarRange carries the color-scaling range for the viewer.
type WebScalarRange struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// WebScene is the JSON shape served to the browser viewer.
type WebScene struct {
	ID          string          `json:"id"`
	Nodes       []WebNode       `json:"nodes"`
	Edges       []WebEdge       `json:"edges"`
	ScalarRange *WebScalarRange `json:"scalarRange,omitempty"`
}

// WebPayload converts the scene into its browser-viewer form.
func (s *Scene) WebPayload() WebScene {
	ws := WebScene{
		ID:    s.ID,
		Nodes: make([]WebNode, len(s.Points)),
		Edges: make([]WebEdge, len(s.Edges)),
	}
	for i, p := range s.Points {
		ws.Nodes[i] = WebNode{ID: i, X: p.X, Y: p.Y, Z: p.Z}
		if s.Scalars != nil {
			area := s.Scalars.Values[i]
			ws.Nodes[i].Area = &area
		}
	}
	for i, e := range s.Edges {
		ws.Edges[i] = WebEdge{From: e.A, To: e.B}
	}
	if s.Scalars != nil {
		ws.ScalarRange = &WebScalarRange{
			Name: s.Scalars.Name,
			Min:  s.Scalars.Min,
			Max:  s.Scalars.Max,
		}
	}
	return ws
}

// WriteJSON encodes the scene's web payload to w.
func (s *Scene) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.WebPayload())
}
