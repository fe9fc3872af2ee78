package easing

import (
	"fmt"
	"math"
)

// Point is a position in the unit square of an easing curve. X is time and Y
// is progress. Points are values; changing a curve's control point replaces
// the point rather than mutating a shared one.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// clamp01 clamps f to [0, 1]. The builtin min and max propagate NaN.
func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
