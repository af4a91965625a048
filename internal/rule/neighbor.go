package rule

import "github.com/halninethousand/3d-cell-automata/internal/core"

// Method selects which surrounding cells count as neighbors.
type Method int

const (
	// Moore counts all 26 cells of the surrounding 3x3x3 cube.
	Moore Method = iota
	// VonNeumann counts only the 6 face-adjacent cells.
	VonNeumann
)

// String returns the method name used in configuration files.
func (m Method) String() string {
	if m == VonNeumann {
		return "von-neumann"
	}
	return "moore"
}

// ParseMethod resolves a configuration name to a Method.
func ParseMethod(name string) (Method, bool) {
	switch name {
	case "moore", "":
		return Moore, true
	case "von-neumann", "vonneumann":
		return VonNeumann, true
	}
	return Moore, false
}

// Offsets returns the method's neighbor offset table. The tables are fixed
// and iterated in a stable order; callers must not mutate the returned slice.
func (m Method) Offsets() []core.IVec3 {
	if m == VonNeumann {
		return vonNeumannOffsets[:]
	}
	return mooreOffsets[:]
}

// MaxNeighbors returns the largest count the method can produce.
func (m Method) MaxNeighbors() int {
	if m == VonNeumann {
		return 6
	}
	return maxNeighbors
}

// Von Neumann neighborhood: the 6 face-adjacent cells.
var vonNeumannOffsets = [6]core.IVec3{
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
}

// Moore neighborhood: the surrounding 3x3x3 cube minus the center, listed
// bottom layer first.
var mooreOffsets = [26]core.IVec3{
	// z = -1
	{X: -1, Y: -1, Z: -1},
	{X: 0, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 0, Z: -1},
	{X: 0, Y: 0, Z: -1},
	{X: 1, Y: 0, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	// z = 0, skipping the center
	{X: -1, Y: -1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 1, Y: -1, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 1, Z: 0},
	// z = 1
	{X: -1, Y: -1, Z: 1},
	{X: 0, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: 0, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
}
