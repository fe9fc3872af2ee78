package easing

import (
	"math"
	"strings"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := math.Hypot(d.X-dApprox.X, d.Y-dApprox.Y); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezMatchesEasing(t *testing.T) {
	e := New(0.25, 0.1, 0.25, 1)
	c := e.Curve()
	diff(t, Pt(0, 0), c.Start())
	diff(t, Pt(1, 1), c.End())
	for i := range 11 {
		ts := float64(i) / 10
		p := c.Eval(ts)
		diff(t, []float64{p.X, p.Y}, []float64{e.x(ts), e.y(ts)}, approx(1e-12))
	}
}

func TestCubicBezExtrema(t *testing.T) {
	// y = x^2
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
	for i := 1; i < n; i++ {
		if extrema[i] < extrema[i-1] {
			t.Errorf("extrema not sorted: %v", extrema[:n])
		}
	}
}

func TestCubicBezNaN(t *testing.T) {
	c := New(math.NaN(), 0, 1, 1).Curve()
	if !c.IsNaN() {
		t.Error("got IsNaN() = false")
	}
	if c.IsInf() {
		t.Error("got IsInf() = true")
	}
	if !New(0, math.Inf(1), 1, 1).Curve().IsInf() {
		t.Error("got IsInf() = false")
	}
}

func TestCubicBezSVG(t *testing.T) {
	c := New(0.42, 0, 0.58, 1).Curve()
	diff(t, "M0,0 C0.42,0 0.58,1 1,1", c.SVG(SVGOptions{}))
	diff(t, "M0,1 C0.42,1 0.58,0 1,0", c.SVG(SVGOptions{FlipY: true}))

	c = New(1.0/3.0, 0.1, 2.0/3.0, 1).Curve()
	diff(t, "M0,0 C0.333,0.1 0.667,1 1,1", c.SVG(SVGOptions{MaxPrecision: 3}))

	var sb strings.Builder
	if err := c.WriteSVG(&sb, SVGOptions{MaxPrecision: 2}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M0,0 C0.33,0.1 0.67,1 1,1", sb.String())
}
