// Package render rasterizes lattice state into RGBA pixel buffers for 2D
// display surfaces.
package render

import (
	"github.com/halninethousand/3d-cell-automata/internal/core"
	"github.com/halninethousand/3d-cell-automata/internal/lattice"
)

// SliceRGBA fills buf with one z-slice of the lattice, row-major with x
// fastest, 4 bytes per cell. Live cells get their gradient color; dead
// cells become transparent black. buf must hold size²*4 bytes.
func SliceRGBA(buf []byte, g *lattice.Grid, z int, colors lattice.Colors, maxState uint8) {
	size := g.Size()
	cells := g.Cells()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			base := (y*size + x) * 4
			cell := cells[g.Index(core.IVec3{X: x, Y: y, Z: z})]
			if cell.Dead() {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			col := lattice.StateColor(colors, cell.State, maxState)
			buf[base+0] = channelByte(col[0])
			buf[base+1] = channelByte(col[1])
			buf[base+2] = channelByte(col[2])
			buf[base+3] = channelByte(col[3])
		}
	}
}

// channelByte converts a [0,1] float channel to a rounded byte.
func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
