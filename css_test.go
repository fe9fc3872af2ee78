package easing

import (
	"errors"
	"math"
	"testing"
)

func TestFormatCubicBezier(t *testing.T) {
	tests := []struct {
		p1, p2 Point
		want   string
	}{
		{Pt(0.42, 0), Pt(0.58, 1), "cubic-bezier(0.42, 0.00, 0.58, 1.00)"},
		{Pt(0.34, 1.56), Pt(0.64, 1), "cubic-bezier(0.34, 1.56, 0.64, 1.00)"},
		{Pt(0.123, -0.456), Pt(1.0/3.0, 2), "cubic-bezier(0.12, -0.46, 0.33, 2.00)"},
		{Pt(-0.001, 0), Pt(1, 1), "cubic-bezier(0.00, 0.00, 1.00, 1.00)"},
	}
	for _, tt := range tests {
		diff(t, tt.want, FormatCubicBezier(tt.p1, tt.p2))
	}
}

func TestFormatLinear(t *testing.T) {
	diff(t, "linear(0.0000, 0.2500, 0.5000, 0.7500, 1.0000)", FormatLinear([]float64{0, 0.25, 0.5, 0.75, 1}))
	diff(t, "linear(0.0000, 1.0000)", FormatLinear([]float64{-1e-9, 1}))

	e, _ := Keyword("ease-in-out")
	diff(t, "linear(0.0000, 0.1292, 0.5000, 0.8708, 1.0000)", e.LinearCSS(4))
	diff(t, "cubic-bezier(0.42, 0.00, 0.58, 1.00)", e.CSS())
}

func TestFormatSteps(t *testing.T) {
	e, _ := Keyword("ease")
	want := []string{"0.0000", "0.0948", "0.2952", "0.5133", "0.6825", "0.8024", "0.8852", "0.9408", "0.9756", "0.9943", "1.0000"}
	diff(t, want, FormatSteps(e.Sample(10)))
	diff(t, []string{}, FormatSteps(nil))
	diff(t, []string{"NaN"}, FormatSteps([]float64{math.NaN()}))
}

func TestParseCSS(t *testing.T) {
	tests := []struct {
		in   string
		want Easing
	}{
		{"ease", New(0.25, 0.1, 0.25, 1)},
		{"  ease-in-out\n", New(0.42, 0, 0.58, 1)},
		{"cubic-bezier(0.34, 1.56, 0.64, 1)", New(0.34, 1.56, 0.64, 1)},
		{"cubic-bezier(0,0,1,1)", New(0, 0, 1, 1)},
		{"cubic-bezier( .5 , -2 , 1 , 3e0 )", New(0.5, -2, 1, 3)},
	}
	for _, tt := range tests {
		got, err := ParseCSS(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.in, err)
			continue
		}
		diff(t, tt.want, got)
	}
}

func TestParseCSSInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"steps(4, end)",
		"linear(0, 1)",
		"cubic-bezier(0.1, 0.2, 0.3",
		"cubic-bezier(0.1, 0.2, 0.3)",
		"cubic-bezier(0.1, 0.2, 0.3, 0.4, 0.5)",
		"cubic-bezier(0.1, foo, 0.3, 0.4)",
		"cubic-bezier(1.5, 0, 0.5, 1)",
		"cubic-bezier(0.5, 0, -0.1, 1)",
		"cubic-bezier(0.5, NaN, 0.5, 1)",
		"cubic-bezier(0.5, 0, 0.5, Inf)",
	} {
		_, err := ParseCSS(in)
		if !errors.Is(err, ErrInvalidCSS) {
			t.Errorf("%q: got error %v, want ErrInvalidCSS", in, err)
		}
	}
}

func TestCustomPropertyName(t *testing.T) {
	tests := map[string]string{
		"Ease Out Back":  "--ease-out-back",
		"ease-in":        "--ease-in",
		"  Snappy\tOne ": "--snappy-one",
		"":               "--",
	}
	for in, want := range tests {
		diff(t, want, CustomPropertyName(in))
	}
}
