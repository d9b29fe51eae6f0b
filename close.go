package gm

import (
	"errors"
	"math"
)

// ErrNegativeDelta is returned by the CloseTo methods when they are called
// with a negative tolerance.
var ErrNegativeDelta = errors.New("negative delta")

func closeEnough(a, b, delta float64) bool {
	return math.Abs(a-b) <= delta
}
