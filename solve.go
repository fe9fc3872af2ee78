package easing

import (
	"math"
)

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SolveOptions configures [SolveNewton]. The zero value selects the
// defaults documented on each field.
type SolveOptions struct {
	// Epsilon is the acceptable distance between f(x) and the target.
	// Defaults to 1e-5.
	Epsilon float64
	// NewtonIterations bounds the number of Newton-Raphson steps. Defaults
	// to 8.
	NewtonIterations int
	// BisectionIterations bounds the number of bisection steps taken when
	// Newton-Raphson didn't converge. Defaults to 20.
	BisectionIterations int
	// MinSlope is the smallest derivative magnitude Newton-Raphson will
	// divide by. Defaults to 1e-6.
	MinSlope float64
}

func (opts SolveOptions) withDefaults() SolveOptions {
	if opts.Epsilon <= 0 {
		opts.Epsilon = 1e-5
	}
	if opts.NewtonIterations <= 0 {
		opts.NewtonIterations = 8
	}
	if opts.BisectionIterations <= 0 {
		opts.BisectionIterations = 20
	}
	if opts.MinSlope <= 0 {
		opts.MinSlope = 1e-6
	}
	return opts
}

// SolveNewton solves f(x) = target for x in [lo, hi], where f is
// non-decreasing on that interval and df is its derivative.
//
// It starts with Newton-Raphson iteration from guess. When an iterate lands
// on a near-zero derivative or leaves the bracket, it falls back to bisection
// of [lo, hi]. Both phases have a bounded number of steps, so SolveNewton
// always terminates. If neither phase reaches the requested precision, the
// best estimate seen is returned.
//
// For functions that aren't monotonic on [lo, hi], the result is a point in
// the bracket with f close to target if Newton-Raphson finds one, and
// otherwise whatever bisection converges to. NaN inputs produce NaN.
func SolveNewton(
	f func(float64) float64,
	df func(float64) float64,
	target float64,
	guess float64,
	lo float64,
	hi float64,
	opts SolveOptions,
) float64 {
	opts = opts.withDefaults()

	x := min(max(guess, lo), hi)
	best := x
	bestErr := math.Inf(1)
	// observe records x as the best estimate if it improves on the previous
	// one and reports whether it is within epsilon.
	observe := func(x, err float64) bool {
		err = math.Abs(err)
		if err < bestErr {
			best, bestErr = x, err
		}
		return err < opts.Epsilon
	}

	for range opts.NewtonIterations {
		err := f(x) - target
		if observe(x, err) {
			return x
		}
		d := df(x)
		if math.Abs(d) < opts.MinSlope {
			break
		}
		next := x - err/d
		if !(next >= lo && next <= hi) {
			break
		}
		x = next
	}

	a, b := lo, hi
	for range opts.BisectionIterations {
		x = 0.5 * (a + b)
		err := f(x) - target
		if observe(x, err) {
			return x
		}
		if err > 0 {
			b = x
		} else {
			a = x
		}
	}
	return best
}
