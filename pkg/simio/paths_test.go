package simio

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLayout_PositionsPath(t *testing.T) {
	l := Layout{DataDir: "data", Variant: VariantNoNetwork}

	want := filepath.Join("data", "viz-no-network", "positions", "rank_0_positions.txt")
	if got := l.PositionsPath(); got != want {
		t.Errorf("PositionsPath() = %q, want %q", got, want)
	}
}

func TestLayout_NetworkPath(t *testing.T) {
	l := Layout{DataDir: "data", Variant: VariantStimulus, Rank: 2}

	want := filepath.Join("data", "viz-stimulus", "network", "rank_2_step_1000000_in_network.txt")
	if got := l.NetworkPath(1000000, DirectionIn); got != want {
		t.Errorf("NetworkPath() = %q, want %q", got, want)
	}

	want = filepath.Join("data", "viz-stimulus", "network", "rank_2_step_500_out_network.txt")
	if got := l.NetworkPath(500, DirectionOut); got != want {
		t.Errorf("NetworkPath() = %q, want %q", got, want)
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v, got, err)
		}
	}

	_, err := ParseVariant("no_network")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Got %v, want ErrUnknownVariant", err)
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("in"); err != nil {
		t.Errorf("ParseDirection(in) failed: %v", err)
	}
	if _, err := ParseDirection("out"); err != nil {
		t.Errorf("ParseDirection(out) failed: %v", err)
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("Got %v, want ErrUnknownDirection", err)
	}
}
