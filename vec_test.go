package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec_AddSub(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 10, Y: -4}

	require.Equal(t, Vec{X: 11, Y: -2}, a.Add(b))
	require.Equal(t, Vec{X: -9, Y: 6}, a.Sub(b))

	// adding and subtracting the same vector is the identity
	for range 100 {
		v, w := RandomVec(), RandomVec()
		require.Equal(t, v, v.Add(w).Sub(w))
	}
}

func TestVec_MulDiv(t *testing.T) {
	v := Vec{X: 3, Y: -2}

	require.Equal(t, Vec{X: 6, Y: -4}, v.Mul(2))
	require.Equal(t, Vec{X: 1.5, Y: -1}, v.Div(2))
	require.Equal(t, v, v.Mul(4).Div(4))

	t.Run("division by zero is not guarded", func(t *testing.T) {
		r := v.Div(0)
		require.True(t, math.IsInf(r.X, 1))
		require.True(t, math.IsInf(r.Y, -1))
	})
}

func TestVec_MulEach(t *testing.T) {
	a := Vec{X: 2, Y: 3}
	b := Vec{X: 4, Y: -1}

	require.Equal(t, Vec{X: 8, Y: -3}, a.MulEach(b))
	require.Equal(t, a, a.MulEach(VecOne))
	require.Equal(t, a, a.MulEach(b).DivEach(b))
}

func TestVec_Length(t *testing.T) {
	require.Equal(t, 5.0, Vec{X: 3, Y: 4}.Length())
	require.Equal(t, 25.0, Vec{X: 3, Y: 4}.LengthSqr())
	require.Equal(t, 0.0, VecZero.Length())
}

func TestVec_DistanceTo(t *testing.T) {
	a := Vec{X: 1, Y: 1}
	b := Vec{X: 4, Y: 5}

	require.Equal(t, 5.0, a.DistanceTo(b))
	require.Equal(t, b.DistanceTo(a), a.DistanceTo(b))
	require.Equal(t, 0.0, a.DistanceTo(a))
}

func TestVec_Normalized(t *testing.T) {
	require.Equal(t, Vec{X: 1, Y: 0}, Vec{X: 10, Y: 0}.Normalized())

	for range 100 {
		v := RandomVec().Add(Vec{X: 2, Y: 2})
		require.InDelta(t, 1.0, v.Normalized().Length(), 1e-10)
	}

	t.Run("zero vector yields NaN", func(t *testing.T) {
		r := VecZero.Normalized()
		require.True(t, math.IsNaN(r.X))
		require.True(t, math.IsNaN(r.Y))
	})
}

func TestVec_Rotated(t *testing.T) {
	v := Vec{X: 1, Y: 0}

	r := v.Rotated(DegToRad(90))
	require.InDelta(t, 0, r.X, 1e-10)
	require.InDelta(t, 1, r.Y, 1e-10)

	// a zero angle keeps the vector exactly as is
	require.Equal(t, Vec{X: 3, Y: -7}, Vec{X: 3, Y: -7}.Rotated(0))

	// rotating back and forth is the identity
	for range 100 {
		v := RandomVec()
		angle := RandomAngle()

		r := v.Rotated(angle).Rotated(-angle)
		require.InDelta(t, v.X, r.X, 1e-10)
		require.InDelta(t, v.Y, r.Y, 1e-10)
	}
}

func TestVec_Angle(t *testing.T) {
	require.Equal(t, Rad(0), Vec{X: 1, Y: 0}.Angle())
	require.InDelta(t, math.Pi/2, Vec{X: 0, Y: 1}.Angle().Radians(), 1e-10)
	require.InDelta(t, math.Pi, Vec{X: -1, Y: 0}.Angle().Radians(), 1e-10)
	require.InDelta(t, -math.Pi/4, Vec{X: 1, Y: -1}.Angle().Radians(), 1e-10)
}

func TestVec_Dot(t *testing.T) {
	require.Equal(t, 0.0, Vec{X: 1, Y: 0}.Dot(Vec{X: 0, Y: 1}))
	require.Equal(t, 11.0, Vec{X: 1, Y: 2}.Dot(Vec{X: 3, Y: 4}))
}

func TestVec_CloseTo(t *testing.T) {
	a := Vec{X: 1, Y: 2}

	ok, err := a.CloseTo(Vec{X: 1 + 1e-12, Y: 2 - 1e-12}, 1e-10)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.CloseTo(Vec{X: 1.1, Y: 2}, 1e-10)
	require.NoError(t, err)
	require.False(t, ok)

	t.Run("negative delta", func(t *testing.T) {
		_, err := a.CloseTo(a, -1)
		require.ErrorIs(t, err, ErrNegativeDelta)
	})
}

func TestVec_Array(t *testing.T) {
	require.Equal(t, [2]float64{3, 4}, Vec{X: 3, Y: 4}.Array())
}
