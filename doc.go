// Package easing implements cubic-bezier easing functions, the curves behind
// the CSS cubic-bezier() timing function, along with the bookkeeping an
// easing editor needs: named curves, collections of them, their persisted
// JSON state and their CSS representations.
//
// # Easing functions
//
// An easing function maps normalized time to normalized progress. A
// cubic-bezier easing is the cubic Bézier with the fixed endpoints (0, 0) and
// (1, 1) and two free control points P1 and P2. The curve is parametrized by
// t, so answering "what is the progress at time x" requires solving x(t) = x
// for t first, and then evaluating y(t). [Easing.Eval] does this with
// Newton-Raphson iteration, guarded by bisection where the derivative
// vanishes (see [SolveNewton]). It always terminates after a bounded number
// of steps.
//
// When the x coordinates of both control points lie in [0, 1], x(t) is
// monotonic and every x has exactly one solution. CSS rejects other values;
// this package accepts them, as an editor's drag handles can easily produce
// them, but the results are only well-defined for monotonic curves. See
// [New] and [NewClamped].
//
// # CSS
//
// Easings can be formatted as cubic-bezier() ([Easing.CSS]) or approximated
// by the piecewise linear linear() function ([Easing.LinearCSS]), and parsed
// from cubic-bezier() and the predefined keywords ([ParseCSS]).
//
// # Curves and collections
//
// [Curve] is a named, editable pair of control points, and [Collection] an
// ordered list of curves that owns ID assignment. Collections round-trip
// through JSON of the form
//
//	{"curves": [{"name": "ease-in-out", "points": [0.42, 0, 0.58, 1]}]}
//
// using [Collection.MarshalState] and [Collection.UnmarshalState].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [CSS Easing Functions Level 2]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [CSS Easing Functions Level 2]: https://www.w3.org/TR/css-easing-2/
package easing
