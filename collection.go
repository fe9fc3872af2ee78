package easing

import (
	"iter"
	"slices"
	"strings"
)

// Collection is an ordered list of curves. It assigns curve IDs: each curve
// it creates gets the next integer, starting at 0, and IDs are never reused,
// not even after [Collection.Remove] or [Collection.Clear].
//
// The zero value is an empty collection ready to use. A Collection must not
// be used concurrently; callers that mutate curves from one goroutine and
// evaluate them from another have to provide their own synchronization.
type Collection struct {
	curves []*Curve
	nextID int
}

// Add creates a curve, appends it to the collection and returns it.
func (col *Collection) Add(name string, p1, p2 Point) *Curve {
	c := &Curve{
		id:   col.nextID,
		Name: name,
		p1:   p1,
		p2:   p2,
	}
	col.nextID++
	col.curves = append(col.curves, c)
	return c
}

// AddEasing is like [Collection.Add], taking the control points from e.
func (col *Collection) AddEasing(name string, e Easing) *Curve {
	p1, p2 := e.Points()
	return col.Add(name, p1, p2)
}

// Remove removes the curve with the given ID and reports whether it was
// present.
func (col *Collection) Remove(id int) bool {
	n := len(col.curves)
	col.curves = slices.DeleteFunc(col.curves, func(c *Curve) bool {
		return c.id == id
	})
	return len(col.curves) != n
}

// Get returns the curve with the given ID.
func (col *Collection) Get(id int) (*Curve, bool) {
	i := slices.IndexFunc(col.curves, func(c *Curve) bool {
		return c.id == id
	})
	if i == -1 {
		return nil, false
	}
	return col.curves[i], true
}

// All returns an iterator over the curves, in insertion order.
func (col *Collection) All() iter.Seq[*Curve] {
	return slices.Values(col.curves)
}

// Len returns the number of curves.
func (col *Collection) Len() int {
	return len(col.curves)
}

// Clear removes all curves. The ID counter is not reset.
func (col *Collection) Clear() {
	clear(col.curves)
	col.curves = col.curves[:0]
}

// CustomProperties returns one CSS custom property declaration per curve,
// each terminated by a newline. See [Curve.CustomProperty].
func (col *Collection) CustomProperties() string {
	var sb strings.Builder
	for c := range col.All() {
		sb.WriteString(c.CustomProperty())
		sb.WriteByte('\n')
	}
	return sb.String()
}
