package lattice

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/halninethousand/3d-cell-automata/internal/core"
)

// Colors configures the gradient applied to cell states: a newly born cell
// renders at Birth, a cell one step from death at (almost) Death.
type Colors struct {
	Birth mgl32.Vec4
	Death mgl32.Vec4
}

// DefaultColors returns the standard red-to-green gradient.
func DefaultColors() Colors {
	return Colors{
		Birth: mgl32.Vec4{1, 0, 0, 1},
		Death: mgl32.Vec4{0, 1, 0, 1},
	}
}

// StateColor interpolates between the death and birth colors componentwise
// at t = state/maxState.
func StateColor(colors Colors, state, maxState uint8) mgl32.Vec4 {
	if maxState == 0 {
		return colors.Death
	}
	t := float32(state) / float32(maxState)
	return colors.Death.Mul(1 - t).Add(colors.Birth.Mul(t))
}

// Project emits one instance per live cell: position centered on the origin,
// unit scale, and the state's gradient color. It has no simulation side
// effects, and a fixed lattice snapshot with fixed colors always produces
// the same sequence.
func (g *Grid) Project(colors Colors, maxState uint8) []core.Instance {
	center := float32(g.size-1) * 0.5
	instances := make([]core.Instance, 0, g.LiveCount())

	for index, cell := range g.cells {
		if cell.Dead() {
			continue
		}
		pos := g.Coord(index)
		instances = append(instances, core.Instance{
			Position: mgl32.Vec3{
				float32(pos.X) - center,
				float32(pos.Y) - center,
				float32(pos.Z) - center,
			},
			Scale: 1.0,
			Color: StateColor(colors, cell.State, maxState),
		})
	}
	return instances
}
