// Package gmcp bridges gm values to the types used by the chipmunk
// physics port github.com/jakecoffman/cp/v2.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm"
)

// Vector converts a gm.Vec into a cp.Vector.
func Vector(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Vec converts a cp.Vector into a gm.Vec.
func Vec(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

// BB converts a gm.Rect into a cp.BB. Note that chipmunk uses a y-up
// convention, so Min.Y maps to the bottom and Max.Y to the top.
func BB(r gm.Rect) cp.BB {
	return cp.BB{
		L: r.Min.X,
		B: r.Min.Y,
		R: r.Max.X,
		T: r.Max.Y,
	}
}

// Rect converts a cp.BB into a gm.Rect.
func Rect(bb cp.BB) gm.Rect {
	return gm.Rect{
		Min: gm.Vec{X: bb.L, Y: bb.B},
		Max: gm.Vec{X: bb.R, Y: bb.T},
	}
}
