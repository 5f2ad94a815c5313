package shape

import "math"

// Circle is a circle of radius Radius.
type Circle struct {
	base
	radius float64
}

var _ Shape = Circle{}

// NewCircle returns a Circle labelled name. A negative radius is not
// rejected; Perimeter goes negative while Area stays positive.
func NewCircle(name string, radius float64) Circle {
	return Circle{base: base{name: name}, radius: radius}
}

// Radius returns the radius.
func (c Circle) Radius() float64 { return c.radius }

// Kind returns KindCircle.
func (Circle) Kind() Kind { return KindCircle }

// Perimeter returns 2·π·radius.
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// Area returns π·radius².
func (c Circle) Area() float64 { return math.Pi * c.radius * c.radius }
