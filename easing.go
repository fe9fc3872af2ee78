package easing

import (
	"iter"
	"maps"
	"math"
	"slices"
)

// Easing is a cubic-bezier easing function, as used by CSS. It is the cubic
// Bézier with P0 = (0, 0), P3 = (1, 1) and two free control points, read as a
// function from time (x) to progress (y).
//
// Easing is an immutable value. The zero value is not a useful easing; use
// [New], [NewClamped] or [Keyword].
//
// Easing does no locking, and it doesn't need any: all methods are pure
// functions of the control points.
type Easing struct {
	p1, p2 Point

	// Polynomial coefficients of x(t) = ((ax t + bx) t + cx) t and likewise
	// for y.
	ax, bx, cx float64
	ay, by, cy float64

	// identity is set when x(t) = y(t), in which case Eval(x) = x.
	identity bool
}

// New returns the easing with control points P1 = (x1, y1) and P2 = (x2, y2).
//
// The coordinates are used as given. If x1 or x2 lie outside [0, 1], x(t)
// may not be monotonic and there can be more than one t for a given x. Eval
// still returns a finite value in that case, but which of the candidate
// solutions it picks is unspecified. Use [NewClamped] or check
// [Easing.Monotonic] if that matters. NaN coordinates are not rejected; they
// result in NaN outputs.
func New(x1, y1, x2, y2 float64) Easing {
	e := Easing{
		p1: Pt(x1, y1),
		p2: Pt(x2, y2),
	}
	e.cx = 3 * x1
	e.bx = 3*(x2-x1) - e.cx
	e.ax = 1 - e.cx - e.bx
	e.cy = 3 * y1
	e.by = 3*(y2-y1) - e.cy
	e.ay = 1 - e.cy - e.by
	e.identity = x1 == y1 && x2 == y2
	return e
}

// NewClamped is like [New], but clamps x1 and x2 to [0, 1], which guarantees
// that x(t) is monotonic.
func NewClamped(x1, y1, x2, y2 float64) Easing {
	return New(clamp01(x1), y1, clamp01(x2), y2)
}

// Points returns the two control points.
func (e Easing) Points() (p1, p2 Point) {
	return e.p1, e.p2
}

// Curve returns the easing as a two-dimensional cubic Bézier.
func (e Easing) Curve() CubicBez {
	return CubicBez{
		P0: Pt(0, 0),
		P1: e.p1,
		P2: e.p2,
		P3: Pt(1, 1),
	}
}

func (e Easing) x(t float64) float64 {
	return ((e.ax*t+e.bx)*t + e.cx) * t
}

func (e Easing) y(t float64) float64 {
	return ((e.ay*t+e.by)*t + e.cy) * t
}

// dx computes x'(t) = 3(1-t)²x1 + 6(1-t)t(x2-x1) + 3t²(1-x2).
func (e Easing) dx(t float64) float64 {
	return (3*e.ax*t+2*e.bx)*t + e.cx
}

// T returns the curve parameter t at which the curve's x coordinate is x,
// with x clamped to [0, 1].
func (e Easing) T(x float64) float64 {
	x = clamp01(x)
	if e.identity {
		return x
	}
	// x(t) stays close to t for typical curves, so x is the initial guess.
	return SolveNewton(e.x, e.dx, x, x, 0, 1, SolveOptions{})
}

// Eval returns the progress at time x.
//
// x is clamped to [0, 1]. Eval never panics; if the root finder doesn't
// converge, the result is based on the best estimate it found.
func (e Easing) Eval(x float64) float64 {
	if e.identity {
		return clamp01(x)
	}
	return e.y(e.T(x))
}

// Samples returns an iterator over steps+1 evenly spaced evaluations of the
// easing, at x = i/steps for i = 0, …, steps. The first sample is at exactly
// x = 0 and the last at exactly x = 1. Values of steps less than 1 are
// treated as 1.
//
// See [Easing.Sample] for a version that returns a slice.
func (e Easing) Samples(steps int) iter.Seq2[int, float64] {
	steps = max(steps, 1)
	return func(yield func(int, float64) bool) {
		for i := range steps + 1 {
			if !yield(i, e.Eval(float64(i)/float64(steps))) {
				return
			}
		}
	}
}

// Sample returns steps+1 evenly spaced evaluations of the easing. See
// [Easing.Samples].
func (e Easing) Sample(steps int) []float64 {
	out := make([]float64, 0, max(steps, 1)+1)
	for _, v := range e.Samples(steps) {
		out = append(out, v)
	}
	return out
}

// Monotonic reports whether x(t) is non-decreasing on [0, 1], that is,
// whether the easing is a function of time. This is always the case when x1
// and x2 lie in [0, 1].
func (e Easing) Monotonic() bool {
	const epsilon = 1e-12
	if !(e.dx(0) >= -epsilon && e.dx(1) >= -epsilon) {
		return false
	}
	if e.ax != 0 {
		// x'(t) is a parabola; check its vertex.
		if tv := -e.bx / (3 * e.ax); tv > 0 && tv < 1 {
			return e.dx(tv) >= -epsilon
		}
	}
	return true
}

// Bounds returns the minimum and maximum progress the easing reaches. These
// lie outside [0, 1] for curves that overshoot, such as "back" easings with
// y1 < 0 or y2 > 1.
func (e Easing) Bounds() (lo, hi float64) {
	if e.p1.IsNaN() || e.p2.IsNaN() {
		return math.NaN(), math.NaN()
	}
	lo, hi = 0, 1
	ex, n := e.Curve().Extrema()
	for _, t := range ex[:n] {
		y := e.y(t)
		lo = min(lo, y)
		hi = max(hi, y)
	}
	return lo, hi
}

// Equal reports whether e and o have identical control points.
func (e Easing) Equal(o Easing) bool {
	return e.p1 == o.p1 && e.p2 == o.p2
}

// keywords are the named easings CSS predefines.
var keywords = map[string]Easing{
	"ease":        New(0.25, 0.1, 0.25, 1),
	"linear":      New(0, 0, 1, 1),
	"ease-in":     New(0.42, 0, 1, 1),
	"ease-out":    New(0, 0, 0.58, 1),
	"ease-in-out": New(0.42, 0, 0.58, 1),
}

// Keyword returns the easing for one of the CSS easing keywords "ease",
// "linear", "ease-in", "ease-out" and "ease-in-out".
func Keyword(name string) (Easing, bool) {
	e, ok := keywords[name]
	return e, ok
}

// Keywords returns the names accepted by [Keyword], sorted.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}
