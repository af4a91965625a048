package lattice

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/halninethousand/3d-cell-automata/internal/core"
	"github.com/halninethousand/3d-cell-automata/internal/rule"
)

func TestProjectDeterministic(t *testing.T) {
	r := rule.Rule445()
	g := mustNew(t, 10)
	g.SeedCluster(r, core.NewRNG(21), 3, 120)
	g.Step(r)

	colors := DefaultColors()
	first := g.Project(colors, r.MaxState())
	second := g.Project(colors, r.MaxState())
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Project on a fixed snapshot must be bit-reproducible")
	}
}

func TestProjectCentersOnOrigin(t *testing.T) {
	r := rule.Rule445()
	g := mustNew(t, 3)
	g.Spawn(r, core.IVec3{X: 1, Y: 1, Z: 1})

	out := g.Project(DefaultColors(), r.MaxState())
	if len(out) != 1 {
		t.Fatalf("projected %d instances, want 1", len(out))
	}
	if out[0].Position != (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("center cell projected to %v, want origin", out[0].Position)
	}

	g = mustNew(t, 3)
	g.Spawn(r, core.IVec3{})
	out = g.Project(DefaultColors(), r.MaxState())
	if out[0].Position != (mgl32.Vec3{-1, -1, -1}) {
		t.Fatalf("corner cell projected to %v, want (-1,-1,-1)", out[0].Position)
	}
}

func TestProjectEmitsOnlyLiveCells(t *testing.T) {
	r := rule.Rule445()
	g := mustNew(t, 6)
	g.SeedCluster(r, core.NewRNG(8), 2, 40)

	out := g.Project(DefaultColors(), r.MaxState())
	if len(out) != g.LiveCount() {
		t.Fatalf("projected %d instances for %d live cells", len(out), g.LiveCount())
	}
	for _, inst := range out {
		if inst.Scale != 1.0 {
			t.Fatalf("instance scale = %v, want 1.0", inst.Scale)
		}
	}
}

func TestProjectColorGradient(t *testing.T) {
	colors := Colors{
		Birth: mgl32.Vec4{1, 0, 0, 1},
		Death: mgl32.Vec4{0, 1, 0, 1},
	}
	const max = 5

	// Newly born cell sits at the birth end of the gradient.
	if got := StateColor(colors, max, max); got != colors.Birth {
		t.Fatalf("StateColor at max = %v, want %v", got, colors.Birth)
	}

	// A trail cell blends componentwise at t = state/max.
	got := StateColor(colors, 1, max)
	want := mgl32.Vec4{0.2, 0.8, 0, 1}
	for i := 0; i < 4; i++ {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Fatalf("StateColor(1/%d) = %v, want %v", max, got, want)
		}
	}
}

func TestProjectColorFlowsIntoInstances(t *testing.T) {
	r := rule.Rule445()
	g := mustNew(t, 4)
	g.Spawn(r, core.IVec3{X: 2, Y: 1, Z: 0})

	colors := DefaultColors()
	out := g.Project(colors, r.MaxState())
	if len(out) != 1 || out[0].Color != colors.Birth {
		t.Fatalf("max-state cell projected color %v, want %v", out[0].Color, colors.Birth)
	}
}
