package scene

// GlyphStyle selects how points are drawn.
type GlyphStyle string

const (
	GlyphVertex GlyphStyle = "vertex" // screen-space vertices rendered as spheres
	GlyphSphere GlyphStyle = "sphere" // real sphere geometry per point
)

// EdgeStyle selects how edge cells are drawn.
type EdgeStyle string

const (
	EdgeLines EdgeStyle = "lines"
	EdgeTubes EdgeStyle = "tubes"
)

// LookupTable describes the HSV color lookup table used to map scalars onto
// colors. Values are the legacy calibration; changing them shifts every area
// color in the rendered scene.
type LookupTable struct {
	Colors     int
	HueMin     float64
	HueMax     float64
	Saturation float64
	Value      float64
	Alpha      float64
}

// DefaultLookupTable returns the 256-color full-hue table the legacy scenes
// were calibrated against.
func DefaultLookupTable() LookupTable {
	return LookupTable{
		Colors:     256,
		HueMin:     0,
		HueMax:     1,
		Saturation: 1,
		Value:      1,
		Alpha:      1,
	}
}

// RenderOptions carries the presentation settings a renderer interprets.
// The scene itself stays purely geometric.
type RenderOptions struct {
	Glyph         GlyphStyle
	Edges         EdgeStyle
	PointSize     float64
	LineWidth     float64
	EdgeOpacity   float64
	Background    [3]float64
	FlatColor     [3]float64 // point color when the scene has no scalars
	ShowAxes      bool
	ShowScalarBar bool
	Title         string
	Table         LookupTable
}

// DefaultRenderOptions returns the presentation defaults of the legacy
// viewer: vertex glyphs drawn as spheres, tube-rendered edges, blue flat
// color on a dark slate background.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Glyph:       GlyphVertex,
		Edges:       EdgeTubes,
		PointSize:   10,
		LineWidth:   2,
		EdgeOpacity: 0.8,
		Background:  [3]float64{0.32, 0.34, 0.43},
		FlatColor:   [3]float64{0, 0, 1},
		ShowAxes:    true,
		Title:       "Brain visualisation with neurons and connections",
		Table:       DefaultLookupTable(),
	}
}

// Renderer is the boundary to the external rendering engine. The engine owns
// cameras, lighting, windows and interaction; the core only supplies the
// scene and presentation options.
type Renderer interface {
	Render(s *Scene, opts RenderOptions) error
}
