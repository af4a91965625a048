// Package lattice holds the mutable simulation state of the 3D automaton:
// a cubic toroidal grid of multi-state cells with incrementally maintained
// neighbor counts, the two-phase step algorithm, and the projection of live
// cells into renderer-facing instances.
package lattice

import (
	"fmt"

	"github.com/halninethousand/3d-cell-automata/internal/core"
	"github.com/halninethousand/3d-cell-automata/internal/rule"
)

// maxSize is the largest edge length whose cube still fits in the flat
// cell index.
const maxSize = 2097151

// Cell is one lattice site: its current state value and a cached count of
// neighbors currently at max state. The cache is the load-bearing part of
// the design: it is updated incrementally whenever a neighbor enters or
// leaves max state, never recomputed wholesale after initialization.
type Cell struct {
	State     uint8
	Neighbors uint8
}

// Dead reports whether the cell holds no state.
func (c Cell) Dead() bool { return c.State == 0 }

// Grid is a size³ toroidal lattice stored as a flat array for cache
// efficiency. The grid exclusively owns its cells; nothing outside this
// package holds references into the array across steps.
type Grid struct {
	cells []Cell
	size  int

	// scratch buffers reused across steps
	spawns []int
	deaths []int
}

// StepStats summarizes the state transitions of one step.
type StepStats struct {
	Spawns int
	Deaths int
}

// New allocates a size³ lattice of dead cells with zero neighbor counts.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("lattice: size must be positive, got %d", size)
	}
	if size > maxSize {
		return nil, fmt.Errorf("lattice: size %d overflows the cell index", size)
	}
	return &Grid{
		cells: make([]Cell, size*size*size),
		size:  size,
	}, nil
}

// Size returns the lattice edge length.
func (g *Grid) Size() int { return g.size }

// Cells exposes the backing cell array in flat-index order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the flat array index for an in-range coordinate.
func (g *Grid) Index(p core.IVec3) int {
	return p.X + p.Y*g.size + p.Z*g.size*g.size
}

// Coord returns the coordinate for a flat array index. Index and Coord are
// inverse bijections over the valid range.
func (g *Grid) Coord(index int) core.IVec3 {
	return core.IVec3{
		X: index % g.size,
		Y: index / g.size % g.size,
		Z: index / g.size / g.size,
	}
}

// Wrap reduces each axis modulo size into [0, size), mapping negative
// inputs onto the torus rather than truncating toward zero.
func (g *Grid) Wrap(p core.IVec3) core.IVec3 {
	s := g.size
	return core.IVec3{
		X: (p.X%s + s) % s,
		Y: (p.Y%s + s) % s,
		Z: (p.Z%s + s) % s,
	}
}

// bumpNeighbors adjusts the cached neighbor count of every cell adjacent to
// index, after the cell there entered (inc) or left (dec) max state.
func (g *Grid) bumpNeighbors(m rule.Method, index int, inc bool) {
	pos := g.Coord(index)
	for _, offset := range m.Offsets() {
		n := g.Index(g.Wrap(pos.Add(offset)))
		if inc {
			g.cells[n].Neighbors++
		} else {
			g.cells[n].Neighbors--
		}
	}
}

// Spawn sets the cell at the wrapped position to max state if it is dead,
// updating the neighborhood's cached counts. It reports whether the cell
// was actually spawned; a live target is left untouched so counts are never
// double-bumped.
func (g *Grid) Spawn(r rule.Rule, p core.IVec3) bool {
	if r.MaxState() == 0 {
		return false
	}
	index := g.Index(g.Wrap(p))
	if !g.cells[index].Dead() {
		return false
	}
	g.cells[index].State = r.MaxState()
	g.bumpNeighbors(r.Method, index, true)
	return true
}

// SeedCluster spawns up to amount cells at positions drawn uniformly within
// [-radius, radius] of the lattice center on each axis. Candidates landing
// on an already-live cell are skipped. Seeding is random but preserves the
// neighbor-count invariant exactly.
func (g *Grid) SeedCluster(r rule.Rule, rng *core.RNG, radius, amount int) int {
	c := g.size / 2
	center := core.IVec3{X: c, Y: c, Z: c}
	spawned := 0
	for i := 0; i < amount; i++ {
		if g.Spawn(r, center.Add(rng.Offset(radius))) {
			spawned++
		}
	}
	return spawned
}

// Step advances the automaton by one generation in two strict phases.
//
// Phase 1 decides every cell's next value from the neighbor counts as they
// stood when the step began: dead cells are born at max state when the
// birth predicate matches, max-state cells survive or begin decaying when
// the survival predicate fails, and trail cells below max state decay by
// one unconditionally. Phase 1 never touches a neighbor count, so the
// counts act as a frozen snapshot and no cell's decision can leak into
// another's within the same step.
//
// Phase 2 replays the recorded spawns and deaths against the neighbor-count
// cache. Only cells that entered or left max state are visited, so the cost
// is proportional to the step's state transitions rather than to the whole
// lattice. After phase 2 every cell's cached count again equals the true
// number of max-state neighbors under toroidal wrap, which is exactly what
// the next step's phase 1 relies on.
func (g *Grid) Step(r rule.Rule) StepStats {
	max := r.MaxState()
	g.spawns = g.spawns[:0]
	g.deaths = g.deaths[:0]

	for index := range g.cells {
		cell := &g.cells[index]
		if cell.Dead() {
			// A zero-state rule can never express a live cell; births
			// that would land on state 0 must not touch the cache.
			if max > 0 && r.ShouldBirth(int(cell.Neighbors)) {
				cell.State = max
				g.spawns = append(g.spawns, index)
			}
			continue
		}
		if cell.State == max && r.ShouldSurvive(int(cell.Neighbors)) {
			continue
		}
		// Leaving max state is the only transition the neighbor cache
		// tracks; trail cells decay without touching it.
		if cell.State == max {
			g.deaths = append(g.deaths, index)
		}
		cell.State--
	}

	for _, index := range g.spawns {
		g.bumpNeighbors(r.Method, index, true)
	}
	for _, index := range g.deaths {
		g.bumpNeighbors(r.Method, index, false)
	}

	return StepStats{Spawns: len(g.spawns), Deaths: len(g.deaths)}
}

// LiveCount returns the number of cells with any state. It scans the whole
// lattice and is meant for diagnostics, not the hot path.
func (g *Grid) LiveCount() int {
	count := 0
	for _, c := range g.cells {
		if !c.Dead() {
			count++
		}
	}
	return count
}
