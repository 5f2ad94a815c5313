package shape

import (
	"fmt"
	"io"
)

// Measure evaluates Perimeter and Area of s through the Shape interface.
//
// Errors:
//   - ErrNilShape if s is a nil interface.
//   - ErrUnimplemented if s holds a nil *Square or *Circle.
func Measure(s Shape) (Measurement, error) {
	if s == nil {
		return Measurement{}, ErrNilShape
	}
	if isNilVariant(s) {
		return Measurement{}, fmt.Errorf("measure %T: %w", s, ErrUnimplemented)
	}

	return Measurement{
		Name:      s.Name(),
		Kind:      s.Kind(),
		Perimeter: s.Perimeter(),
		Area:      s.Area(),
	}, nil
}

// MeasureAll measures every shape in order. It stops at the first failure
// and reports the index of the offending element.
func MeasureAll(shapes []Shape) ([]Measurement, error) {
	out := make([]Measurement, 0, len(shapes))
	for i, s := range shapes {
		m, err := Measure(s)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// Render writes one report line per shape to w, in slice order.
// Nothing is written if any shape fails to measure.
func Render(w io.Writer, shapes []Shape) error {
	ms, err := MeasureAll(shapes)
	if err != nil {
		return err
	}
	for _, m := range ms {
		if _, err = fmt.Fprintln(w, m.String()); err != nil {
			return fmt.Errorf("write %q: %w", m.Name, err)
		}
	}

	return nil
}

// isNilVariant reports whether s wraps a nil pointer to a variant. Pointer
// receivers inherit the value methods, so such a value satisfies Shape but
// would dereference nil on the first call.
func isNilVariant(s Shape) bool {
	switch v := s.(type) {
	case *Square:
		return v == nil
	case *Circle:
		return v == nil
	}

	return false
}
