package shape

// Square is a square with side length Side. The zero value is a nameless
// square of side 0.
type Square struct {
	base
	side float64
}

var _ Shape = Square{}

// NewSquare returns a Square labelled name. side is taken as-is; zero and
// negative values are accepted.
func NewSquare(name string, side float64) Square {
	return Square{base: base{name: name}, side: side}
}

// Side returns the side length.
func (s Square) Side() float64 { return s.side }

// Kind returns KindSquare.
func (Square) Kind() Kind { return KindSquare }

// Perimeter returns 4·side.
func (s Square) Perimeter() float64 { return 4 * s.side }

// Area returns side².
func (s Square) Area() float64 { return s.side * s.side }
