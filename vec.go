package gm

import (
	"fmt"
	"math"
)

// VecZero is the zero vector (0, 0).
var VecZero = Vec{}

// VecOne is the vector (1, 1).
var VecOne = Vec{X: 1, Y: 1}

// Vec is an immutable 2d vector. Operations never mutate the receiver,
// they always return a new Vec. Two vectors compare equal with == iff
// their components are exactly equal.
type Vec struct {
	X, Y float64
}

// VecOf returns the vector (x, y).
func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VecSplat returns the vector (v, v).
func VecSplat(v float64) Vec {
	return Vec{X: v, Y: v}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Mul scales the vector by the given scalar.
func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

// Div divides the vector by the given scalar. Division by zero is not
// guarded and produces infinite or NaN components.
func (v Vec) Div(scalar float64) Vec {
	v.X /= scalar
	v.Y /= scalar
	return v
}

// MulEach returns the componentwise (hadamard) product of the two vectors.
func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// DivEach returns the componentwise quotient of the two vectors.
func (v Vec) DivEach(other Vec) Vec {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Neg returns the vector pointing in the opposite direction.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of the two vectors.
func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the euclidean length of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSqr returns the squared euclidean length of the vector.
func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the euclidean distance between the two vectors.
func (v Vec) DistanceTo(other Vec) float64 {
	return v.Sub(other).Length()
}

// Normalized returns the vector scaled to length one. Normalizing the
// zero vector yields NaN components.
func (v Vec) Normalized() Vec {
	return v.Div(v.Length())
}

// Rotated rotates the vector counter-clockwise by the given angle
// around the origin.
func (v Vec) Rotated(angle Rad) Vec {
	sin, cos := angle.Sincos()
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the angle of the vector, measured counter-clockwise from
// the positive x axis, in the range (-π, π].
func (v Vec) Angle() Rad {
	return Rad(math.Atan2(v.Y, v.X))
}

// CloseTo reports whether both components of the two vectors differ by at
// most delta. It returns ErrNegativeDelta if delta is negative.
func (v Vec) CloseTo(other Vec, delta float64) (bool, error) {
	if delta < 0 {
		return false, fmt.Errorf("delta %v: %w", delta, ErrNegativeDelta)
	}

	return closeEnough(v.X, other.X, delta) && closeEnough(v.Y, other.Y, delta), nil
}

// Array returns the components of the vector as an array.
func (v Vec) Array() [2]float64 {
	return [2]float64{v.X, v.Y}
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
