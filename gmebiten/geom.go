// Package gmebiten bridges gm values to the types used by
// github.com/hajimehoshi/ebiten/v2, so transforms can be fed directly
// into DrawImageOptions and friends.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gm"
)

// GeoM converts the affine transformation into an ebiten.GeoM.
func GeoM(m gm.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.E)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.F)
	return g
}

// Affine converts an ebiten.GeoM back into a gm.Affine.
func Affine(g ebiten.GeoM) gm.Affine {
	return gm.Affine{
		A: g.Element(0, 0),
		C: g.Element(0, 1),
		E: g.Element(0, 2),
		B: g.Element(1, 0),
		D: g.Element(1, 1),
		F: g.Element(1, 2),
	}
}

// Vec converts screen coordinates, e.g. the values of ebiten.CursorPosition,
// into a gm.Vec.
func Vec(x, y int) gm.Vec {
	return gm.Vec{X: float64(x), Y: float64(y)}
}
