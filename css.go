package easing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCSS is returned, wrapped, by [ParseCSS] for input that isn't a
// valid CSS cubic-bezier easing.
var ErrInvalidCSS = errors.New("invalid CSS easing")

// formatFixed formats v with prec decimals. Values that round to zero are
// printed without a sign.
func formatFixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		s = s[1:]
	}
	return s
}

// FormatCubicBezier returns the CSS function cubic-bezier(x1, y1, x2, y2)
// for the control points p1 and p2, with coordinates rounded to two
// decimals.
func FormatCubicBezier(p1, p2 Point) string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		formatFixed(p1.X, 2), formatFixed(p1.Y, 2),
		formatFixed(p2.X, 2), formatFixed(p2.Y, 2))
}

// FormatSteps formats each value with four decimals.
func FormatSteps(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatFixed(v, 4)
	}
	return out
}

// FormatLinear returns the CSS function linear(v0, v1, …, vN), which
// interpolates linearly between evenly spaced stops. Values are formatted
// with four decimals.
func FormatLinear(values []float64) string {
	return "linear(" + strings.Join(FormatSteps(values), ", ") + ")"
}

// CSS returns the easing as cubic-bezier(x1, y1, x2, y2).
func (e Easing) CSS() string {
	return FormatCubicBezier(e.p1, e.p2)
}

// LinearCSS approximates the easing with linear() using steps+1 stops.
func (e Easing) LinearCSS(steps int) string {
	return FormatLinear(e.Sample(steps))
}

// ParseCSS parses a CSS easing function. It accepts the keywords listed by
// [Keywords] and cubic-bezier(x1, y1, x2, y2). As in CSS, x1 and x2 must lie
// in [0, 1].
func ParseCSS(s string) (Easing, error) {
	s = strings.TrimSpace(s)
	if e, ok := Keyword(s); ok {
		return e, nil
	}
	args, ok := strings.CutPrefix(s, "cubic-bezier(")
	if !ok {
		return Easing{}, fmt.Errorf("%w: %q", ErrInvalidCSS, s)
	}
	args, ok = strings.CutSuffix(args, ")")
	if !ok {
		return Easing{}, fmt.Errorf("%w: missing closing parenthesis in %q", ErrInvalidCSS, s)
	}
	fields := strings.Split(args, ",")
	if len(fields) != 4 {
		return Easing{}, fmt.Errorf("%w: got %d arguments, want 4", ErrInvalidCSS, len(fields))
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Easing{}, fmt.Errorf("%w: argument %d: %w", ErrInvalidCSS, i+1, err)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Easing{}, fmt.Errorf("%w: argument %d is not finite", ErrInvalidCSS, i+1)
		}
		v[i] = n
	}
	if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
		return Easing{}, fmt.Errorf("%w: x coordinates must be in [0, 1]", ErrInvalidCSS)
	}
	return New(v[0], v[1], v[2], v[3]), nil
}

// CustomPropertyName derives a CSS custom property name from a curve name,
// by lowercasing it and replacing runs of whitespace with dashes.
// "Ease Out Back" becomes "--ease-out-back".
func CustomPropertyName(name string) string {
	return "--" + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
