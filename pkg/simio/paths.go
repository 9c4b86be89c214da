package simio

import (
	"fmt"
	"path/filepath"
)

// Variant names one family of simulation output directories. Each variant
// has its own viz-<variant> directory under the data root.
type Variant string

const (
	VariantNoNetwork Variant = "no-network"
	VariantDisable   Variant = "disable"
	VariantStimulus  Variant = "stimulus"
	VariantCalcium   Variant = "calcium"
)

// Variants returns all known simulation variants.
func Variants() []Variant {
	return []Variant{VariantNoNetwork, VariantDisable, VariantStimulus, VariantCalcium}
}

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Direction selects the in-network or out-network connection file of a step.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// ParseDirection converts a string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionIn, DirectionOut:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Layout builds the on-disk locations of one rank's simulation output for a
// given variant. The zero rank matches the single-rank files the simulator
// writes by default.
type Layout struct {
	DataDir string
	Variant Variant
	Rank    int
}

// PositionsPath returns the location of the rank's position file.
func (l Layout) PositionsPath() string {
	return filepath.Join(l.variantDir(), "positions",
		fmt.Sprintf("rank_%d_positions.txt", l.Rank))
}

// NetworkPath returns the location of the rank's connection file for a
// simulation step.
func (l Layout) NetworkPath(step int, dir Direction) string {
	return filepath.Join(l.variantDir(), "network",
		fmt.Sprintf("rank_%d_step_%d_%s_network.txt", l.Rank, step, dir))
}

// RecoloredPositionsPath returns the location the recolor utility writes to.
func (l Layout) RecoloredPositionsPath() string {
	return filepath.Join(l.variantDir(), "positions",
		fmt.Sprintf("rank_%d_positions_edited.csv", l.Rank))
}

func (l Layout) variantDir() string {
	return filepath.Join(l.DataDir, fmt.Sprintf("viz-%s", l.Variant))
}
