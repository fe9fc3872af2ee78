package easing

// Curve is a named easing curve, as edited by a user. It is owned by the
// [Collection] that created it.
//
// The control points are stored as given, including x coordinates outside
// [0, 1] that a free-moving drag handle may produce. [Curve.Easing] clamps
// them.
type Curve struct {
	id int
	// Name is a free-form display name. It need not be unique.
	Name string
	p1   Point
	p2   Point
}

// ID returns the curve's identifier, which is unique within its collection.
func (c *Curve) ID() int {
	return c.id
}

// P1 returns the first control point.
func (c *Curve) P1() Point {
	return c.p1
}

// P2 returns the second control point.
func (c *Curve) P2() Point {
	return c.p2
}

// SetP1 replaces the first control point.
func (c *Curve) SetP1(p Point) {
	c.p1 = p
}

// SetP2 replaces the second control point.
func (c *Curve) SetP2(p Point) {
	c.p2 = p
}

// Easing returns the easing function described by the curve, with the x
// coordinates of the control points clamped to [0, 1].
func (c *Curve) Easing() Easing {
	return NewClamped(c.p1.X, c.p1.Y, c.p2.X, c.p2.Y)
}

// CSS returns the curve as cubic-bezier(x1, y1, x2, y2), using the control
// points exactly as stored.
func (c *Curve) CSS() string {
	return FormatCubicBezier(c.p1, c.p2)
}

// LinearCSS approximates the curve with a linear() function of steps+1
// stops.
func (c *Curve) LinearCSS(steps int) string {
	return c.Easing().LinearCSS(steps)
}

// Steps returns steps+1 samples of the curve, each formatted with four
// decimals.
func (c *Curve) Steps(steps int) []string {
	return FormatSteps(c.Easing().Sample(steps))
}

// CustomProperty returns a CSS custom property declaration for the curve,
// such as "--ease-out-back: cubic-bezier(0.34, 1.56, 0.64, 1.00);".
func (c *Curve) CustomProperty() string {
	return CustomPropertyName(c.Name) + ": " + c.CSS() + ";"
}

// Record returns the curve's persisted form.
func (c *Curve) Record() Record {
	return Record{
		Name:   c.Name,
		Points: [4]float64{c.p1.X, c.p1.Y, c.p2.X, c.p2.Y},
	}
}
