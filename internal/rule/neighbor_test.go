package rule

import (
	"testing"

	"github.com/halninethousand/3d-cell-automata/internal/core"
)

func TestMooreOffsets(t *testing.T) {
	offsets := Moore.Offsets()
	if len(offsets) != 26 {
		t.Fatalf("Moore has %d offsets, want 26", len(offsets))
	}
	seen := map[core.IVec3]bool{}
	for _, o := range offsets {
		if o == (core.IVec3{}) {
			t.Fatal("Moore offsets must not include the center")
		}
		if o.X < -1 || o.X > 1 || o.Y < -1 || o.Y > 1 || o.Z < -1 || o.Z > 1 {
			t.Fatalf("offset %v outside the 3x3x3 cube", o)
		}
		if seen[o] {
			t.Fatalf("duplicate offset %v", o)
		}
		seen[o] = true
	}
}

func TestVonNeumannOffsets(t *testing.T) {
	offsets := VonNeumann.Offsets()
	if len(offsets) != 6 {
		t.Fatalf("VonNeumann has %d offsets, want 6", len(offsets))
	}
	seen := map[core.IVec3]bool{}
	for _, o := range offsets {
		nonZero := 0
		for _, v := range []int{o.X, o.Y, o.Z} {
			if v == 1 || v == -1 {
				nonZero++
			} else if v != 0 {
				t.Fatalf("offset %v is not face-adjacent", o)
			}
		}
		if nonZero != 1 {
			t.Fatalf("offset %v is not face-adjacent", o)
		}
		if seen[o] {
			t.Fatalf("duplicate offset %v", o)
		}
		seen[o] = true
	}
}

func TestOffsetOrderStable(t *testing.T) {
	// The table order is part of the contract for cross-implementation
	// comparisons.
	first := Moore.Offsets()[0]
	if first != (core.IVec3{X: -1, Y: -1, Z: -1}) {
		t.Fatalf("Moore table must start at (-1,-1,-1), got %v", first)
	}
	last := Moore.Offsets()[25]
	if last != (core.IVec3{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("Moore table must end at (1,1,1), got %v", last)
	}
}

func TestMaxNeighbors(t *testing.T) {
	if got := Moore.MaxNeighbors(); got != 26 {
		t.Fatalf("Moore.MaxNeighbors() = %d", got)
	}
	if got := VonNeumann.MaxNeighbors(); got != 6 {
		t.Fatalf("VonNeumann.MaxNeighbors() = %d", got)
	}
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		name string
		want Method
		ok   bool
	}{
		{"moore", Moore, true},
		{"", Moore, true},
		{"von-neumann", VonNeumann, true},
		{"vonneumann", VonNeumann, true},
		{"hexagonal", Moore, false},
	}
	for _, c := range cases {
		got, ok := ParseMethod(c.name)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("ParseMethod(%q) = %v, %v", c.name, got, ok)
		}
	}
}
