package easing

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Record is the persisted form of a [Curve]: its name and control points as
// [p1x, p1y, p2x, p2y]. IDs are not persisted.
type Record struct {
	Name   string     `json:"name"`
	Points [4]float64 `json:"points"`
}

// State is the persisted form of a [Collection], encoded as
// {"curves": [{"name": …, "points": […]}, …]}.
type State struct {
	Curves []Record `json:"curves"`
}

// UnmarshalJSON implements [json.Unmarshaler]. Unlike the default decoding
// of arrays, it requires exactly four points.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string    `json:"name"`
		Points []float64 `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Points) != 4 {
		return fmt.Errorf("curve %q: got %d points, want 4", raw.Name, len(raw.Points))
	}
	r.Name = raw.Name
	r.Points = [4]float64(raw.Points)
	return nil
}

// State returns the persisted form of the collection.
func (col *Collection) State() State {
	st := State{Curves: make([]Record, 0, len(col.curves))}
	for c := range col.All() {
		st.Curves = append(st.Curves, c.Record())
	}
	return st
}

// SetState replaces all curves with new curves created from st. The new
// curves get fresh IDs.
func (col *Collection) SetState(st State) {
	col.Clear()
	for _, r := range st.Curves {
		col.Add(r.Name, Pt(r.Points[0], r.Points[1]), Pt(r.Points[2], r.Points[3]))
	}
}

// MarshalState encodes the collection as JSON. It fails if a control point
// is NaN or infinite, as JSON can't represent those.
func (col *Collection) MarshalState() ([]byte, error) {
	b, err := json.Marshal(col.State())
	if err != nil {
		return nil, fmt.Errorf("encoding curve state: %w", err)
	}
	return b, nil
}

// UnmarshalState replaces the collection's curves with those decoded from
// data, as produced by [Collection.MarshalState]. If data is malformed the
// collection is left unchanged.
func (col *Collection) UnmarshalState(data []byte) error {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decoding curve state: %w", err)
	}
	if st.Curves == nil {
		return errors.New("decoding curve state: missing curves")
	}
	col.SetState(st)
	return nil
}
