package gm

import (
	"fmt"
	"math"
)

// Affine is an immutable 2d affine transformation matrix. It represents
// the augmented 3x3 matrix
//
//	[A  C  E]
//	[B  D  F]
//	[0  0  1]
//
// where (A, B, C, D) is the linear (rotation and scale) block and (E, F)
// is the translation. Two matrices compare equal with == iff all six
// components are exactly equal.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	A, B, C, D, E, F float64
}

// AffineOf returns the affine matrix with the given components.
func AffineOf(a, b, c, d, e, f float64) Affine {
	return Affine{A: a, B: b, C: c, D: d, E: e, F: f}
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a transformation that translates by delta.
func Translation(delta Vec) Affine {
	return IdentityAffine().Translated(delta)
}

// Rotation returns a transformation that rotates counter-clockwise by the
// given angle.
func Rotation(angle Rad) Affine {
	return IdentityAffine().Rotated(angle)
}

// Scale returns a transformation that scales by the given vector.
func Scale(scale Vec) Affine {
	return IdentityAffine().Scaled(scale)
}

// Components is the decomposed view of an Affine. It is a derived value
// computed on demand, not part of the matrix itself.
//
// The zero value of Scale stands in for the uniform scale (1, 1), so that
// a Components carrying only a Translation or Rotation composes to the
// expected pure translation or rotation.
type Components struct {
	Translation Vec
	Rotation    Rad
	Scale       Vec
}

// Compose builds the affine matrix translating by c.Translation, rotating
// by c.Rotation and scaling by c.Scale.
func Compose(c Components) Affine {
	scale := c.Scale
	if scale == VecZero {
		scale = VecOne
	}

	sin, cos := c.Rotation.Sincos()

	return Affine{
		A: scale.X * cos,
		B: scale.X * sin,
		C: -scale.Y * sin,
		D: scale.Y * cos,
		E: c.Translation.X,
		F: c.Translation.Y,
	}
}

// Decompose splits the matrix into translation, rotation and scale such
// that Compose approximately reconstructs the original.
//
// The rotation is the larger of the two angle candidates derived from the
// two matrix columns. This resolves the ambiguity between a rotation and a
// negative-scale reflection consistently. Decomposing a pure 90° or 270°
// rotation divides by a vanishing cos(rotation) and degenerates; the scale
// of such a matrix is not recoverable.
func (m Affine) Decompose() Components {
	rotation := math.Max(math.Atan2(m.B, m.A), math.Atan2(-m.C, m.D))
	cos := math.Cos(rotation)

	return Components{
		Translation: Vec{X: m.E, Y: m.F},
		Rotation:    Rad(rotation),
		Scale:       Vec{X: m.A / cos, Y: m.D / cos},
	}
}

// Mul multiplies the matrix with another matrix. The effect of the
// resulting transformation is the same as transforming a point first by
// other and then by m.
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Determinant returns the determinant of the linear block.
func (m Affine) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse of the transformation. A singular matrix is
// not guarded against: a zero determinant yields infinite or NaN
// components by the usual float64 division rules.
func (m Affine) Inverse() Affine {
	denom := m.Determinant()

	return Affine{
		A: m.D / denom,
		B: -m.B / denom,
		C: -m.C / denom,
		D: m.A / denom,
		E: (m.C*m.F - m.D*m.E) / denom,
		F: (m.B*m.E - m.A*m.F) / denom,
	}
}

// Globalize expresses local, a transformation relative to m's coordinate
// space, in the space m itself lives in.
func (m Affine) Globalize(local Affine) Affine {
	return m.Mul(local)
}

// Localize expresses global, a transformation in the space m lives in,
// relative to m's own coordinate space. It is the inverse of Globalize.
func (m Affine) Localize(global Affine) Affine {
	return m.Inverse().Mul(global)
}

// GlobalizedBy returns m expressed in the space parent lives in.
func (m Affine) GlobalizedBy(parent Affine) Affine {
	return parent.Mul(m)
}

// LocalizedBy returns m expressed relative to child's coordinate space.
func (m Affine) LocalizedBy(child Affine) Affine {
	return child.Inverse().Mul(m)
}

// Translated returns the matrix moved by delta. Only the translation
// components change, the linear block stays untouched.
func (m Affine) Translated(delta Vec) Affine {
	m.E += delta.X
	m.F += delta.Y
	return m
}

// Rotated applies a counter-clockwise rotation by the given angle in the
// parent frame.
func (m Affine) Rotated(angle Rad) Affine {
	sin, cos := angle.Sincos()

	rot := Affine{
		A: cos,
		B: sin,
		C: -sin,
		D: cos,
	}

	return rot.Mul(m)
}

// Scaled applies a scale by the given vector in the parent frame.
func (m Affine) Scaled(scale Vec) Affine {
	sc := Affine{
		A: scale.X,
		D: scale.Y,
	}

	return sc.Mul(m)
}

// GlobalizePoint transforms the point p from m's coordinate space into the
// space m lives in.
func (m Affine) GlobalizePoint(p Vec) Vec {
	return Vec{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// LocalizePoint transforms the point p from the space m lives in back into
// m's own coordinate space. It is the inverse of GlobalizePoint.
func (m Affine) LocalizePoint(p Vec) Vec {
	return m.Inverse().GlobalizePoint(p)
}

// CloseTo reports whether all six components of the two matrices differ by
// at most delta. It returns ErrNegativeDelta if delta is negative.
func (m Affine) CloseTo(other Affine, delta float64) (bool, error) {
	if delta < 0 {
		return false, fmt.Errorf("delta %v: %w", delta, ErrNegativeDelta)
	}

	return closeEnough(m.A, other.A, delta) &&
		closeEnough(m.B, other.B, delta) &&
		closeEnough(m.C, other.C, delta) &&
		closeEnough(m.D, other.D, delta) &&
		closeEnough(m.E, other.E, delta) &&
		closeEnough(m.F, other.F, delta), nil
}

// Array returns the components of the matrix as an array, in the order
// a, b, c, d, e, f.
func (m Affine) Array() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

func (m Affine) String() string {
	return fmt.Sprintf("affine(a=%v, b=%v, c=%v, d=%v, e=%v, f=%v)",
		m.A, m.B, m.C, m.D, m.E, m.F)
}
