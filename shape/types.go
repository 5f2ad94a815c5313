package shape

import "fmt"

// Shape is the capability shared by every variant in this package.
// Perimeter and Area are pure functions of the receiver's own dimension.
type Shape interface {
	// Name returns the caller-chosen label given at construction.
	Name() string
	// Kind reports which variant is bound to the interface value.
	Kind() Kind
	// Perimeter returns the length of the boundary.
	Perimeter() float64
	// Area returns the enclosed area.
	Area() float64

	sealed()
}

// Kind enumerates the closed set of variants.
type Kind int

const (
	// KindSquare identifies a Square.
	KindSquare Kind = iota
	// KindCircle identifies a Circle.
	KindCircle
)

// String returns the variant type name used in report lines.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "Square"
	case KindCircle:
		return "Circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// base holds the state common to all variants. It provides no
// Perimeter or Area, so it never satisfies Shape on its own.
type base struct {
	name string
}

// Name returns the label given at construction.
func (b base) Name() string { return b.name }

func (base) sealed() {}

// Measurement is the (name, kind, perimeter, area) tuple for one shape.
type Measurement struct {
	Name      string
	Kind      Kind
	Perimeter float64
	Area      float64
}

// String renders m as a report line, both values to two decimal places.
//
//	sq is a Square 12.00 9.00
func (m Measurement) String() string {
	return fmt.Sprintf("%s is a %s %.2f %.2f", m.Name, m.Kind, m.Perimeter, m.Area)
}
