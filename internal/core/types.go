package core

import "github.com/go-gl/mathgl/mgl32"

// IVec3 is an integer lattice coordinate or neighbor offset.
type IVec3 struct {
	X, Y, Z int
}

// Add returns the componentwise sum of v and o.
func (v IVec3) Add(o IVec3) IVec3 {
	return IVec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Instance is the per-cell visual record handed to renderers each step:
// a world position, a uniform scale, and an RGBA color. Each step's
// instance sequence fully replaces the previous one.
type Instance struct {
	Position mgl32.Vec3 `json:"position"`
	Scale    float32    `json:"scale"`
	Color    mgl32.Vec4 `json:"color"`
}
