package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance for "nearly zero" and "nearly equal" tests
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp returns the value clamped to the range [low, high]
func Clamp[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees / 180.0 * math.Pi
}
