package graph

import "fmt"

// Fixed display range for area scalars. There are 48 anatomical areas in the
// atlas the simulation labels against; the range is a calibration constant,
// not derived from the data, so two scenes with different area subsets still
// color identically.
const (
	AreaScalarMin = 0
	AreaScalarMax = 47
)

// AreaScalarName is the name the renderer sees for the area scalar array.
const AreaScalarName = "Areas"

// MappingMode selects how per-node scalars are derived for coloring.
type MappingMode int

const (
	// MappingNone produces no attribute set; rendering falls back to a
	// single flat color.
	MappingNone MappingMode = iota
	// MappingArea colors nodes by their anatomical area label.
	MappingArea
	// MappingCalcium is reserved for per-node calcium levels. The simulator
	// does not export them yet, so requesting it fails with
	// ErrUnsupportedMapping rather than silently doing nothing.
	MappingCalcium
)

// String returns the string representation of a mapping mode.
func (m MappingMode) String() string {
	switch m {
	case MappingNone:
		return "none"
	case MappingArea:
		return "area"
	case MappingCalcium:
		return "calcium"
	default:
		return "unknown"
	}
}

// ParseMappingMode converts a string to a MappingMode.
func ParseMappingMode(s string) (MappingMode, error) {
	switch s {
	case "none", "":
		return MappingNone, nil
	case "area":
		return MappingArea, nil
	case "calcium":
		return MappingCalcium, nil
	}
	return MappingNone, fmt.Errorf("%w: %q", ErrUnknownMapping, s)
}

// AttributeSet is a per-node scalar array aligned 1:1 with the graph's nodes
// by index, plus the display range used for color scaling.
type AttributeSet struct {
	Name   string
	Values []int
	Min    int
	Max    int
}

// Attributes derives the attribute set for a mapping mode. MappingNone
// returns nil with no error; MappingCalcium returns ErrUnsupportedMapping.
func Attributes(g *Graph, mode MappingMode) (*AttributeSet, error) {
	switch mode {
	case MappingNone:
		return nil, nil
	case MappingArea:
		return AreaAttributes(g)
	case MappingCalcium:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMapping, mode)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMapping, mode)
}

// AreaAttributes builds the area scalar array with the fixed [0, 47] display
// range. Callers needing a different calibration can adjust Min and Max on
// the returned set before handing it to the scene.
func AreaAttributes(g *Graph) (*AttributeSet, error) {
	if !g.HasAreas {
		return nil, ErrNoAreas
	}
	values := make([]int, len(g.Nodes))
	for i, n := range g.Nodes {
		values[i] = n.Area
	}
	return &AttributeSet{
		Name:   AreaScalarName,
		Values: values,
		Min:    AreaScalarMin,
		Max:    AreaScalarMax,
	}, nil
}
