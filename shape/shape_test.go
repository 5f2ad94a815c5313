package shape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/shapes/shape"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

//----------------------------------------------------------------------------//
// Square
//----------------------------------------------------------------------------//

// TestSquare_Formulas checks Perimeter = 4·side and Area = side² across
// positive, zero, negative and fractional sides.
func TestSquare_Formulas(t *testing.T) {
	for _, side := range []float64{3, 0, -2, 0.5, 1e6} {
		sq := shape.NewSquare("s", side)
		assert.Equal(t, 4*side, sq.Perimeter(), "perimeter for side %v", side)
		assert.Equal(t, side*side, sq.Area(), "area for side %v", side)
		assert.Equal(t, side, sq.Side())
	}
}

// TestSquare_Identity verifies the name and kind reported by a square.
func TestSquare_Identity(t *testing.T) {
	sq := shape.NewSquare("sq", 3)
	assert.Equal(t, "sq", sq.Name())
	assert.Equal(t, shape.KindSquare, sq.Kind())
}

// TestSquare_ZeroValue ensures the zero Square measures 0/0 with an empty name.
func TestSquare_ZeroValue(t *testing.T) {
	var sq shape.Square
	assert.Equal(t, "", sq.Name())
	assert.Zero(t, sq.Perimeter())
	assert.Zero(t, sq.Area())
}

//----------------------------------------------------------------------------//
// Circle
//----------------------------------------------------------------------------//

// TestCircle_Formulas checks Perimeter = 2·π·r and Area = π·r² within tolerance.
func TestCircle_Formulas(t *testing.T) {
	for _, r := range []float64{2, 0, -1, 0.25, 1e3} {
		c := shape.NewCircle("c", r)
		assert.InDelta(t, 2*math.Pi*r, c.Perimeter(), eps*math.Max(1, math.Abs(r)), "perimeter for r %v", r)
		assert.InDelta(t, math.Pi*r*r, c.Area(), eps*math.Max(1, r*r), "area for r %v", r)
		assert.Equal(t, r, c.Radius())
	}
}

// TestCircle_NegativeRadius verifies that a negative radius is not rejected:
// the perimeter goes negative while the area stays positive.
func TestCircle_NegativeRadius(t *testing.T) {
	c := shape.NewCircle("neg", -1)
	assert.InDelta(t, -6.283185307179586, c.Perimeter(), eps)
	assert.InDelta(t, math.Pi, c.Area(), eps)
}

// TestCircle_Identity verifies the name and kind reported by a circle.
func TestCircle_Identity(t *testing.T) {
	c := shape.NewCircle("ci", 2)
	assert.Equal(t, "ci", c.Name())
	assert.Equal(t, shape.KindCircle, c.Kind())
}

//----------------------------------------------------------------------------//
// Kind
//----------------------------------------------------------------------------//

// TestKind_String covers both variant names and the fallback for unknown values.
func TestKind_String(t *testing.T) {
	cases := []struct {
		kind shape.Kind
		want string
	}{
		{shape.KindSquare, "Square"},
		{shape.KindCircle, "Circle"},
		{shape.Kind(7), "Kind(7)"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.String())
		})
	}
}

//----------------------------------------------------------------------------//
// Dispatch
//----------------------------------------------------------------------------//

// TestDispatch_ThroughInterface calls the same interface methods on a mixed
// slice and checks each element runs its own variant's formula.
func TestDispatch_ThroughInterface(t *testing.T) {
	shapes := []shape.Shape{
		shape.NewSquare("sq", 2),
		shape.NewCircle("ci", 2),
	}

	// With equal dimensions the two variants must disagree.
	assert.Equal(t, 8.0, shapes[0].Perimeter())
	assert.Equal(t, 4.0, shapes[0].Area())
	assert.InDelta(t, 4*math.Pi, shapes[1].Perimeter(), eps)
	assert.InDelta(t, 4*math.Pi, shapes[1].Area(), eps)
	assert.NotEqual(t, shapes[0].Perimeter(), shapes[1].Perimeter())
}

// TestDispatch_InstancesIndependent ensures two instances of one variant do
// not share state.
func TestDispatch_InstancesIndependent(t *testing.T) {
	a := shape.NewSquare("a", 1)
	b := shape.NewSquare("b", 10)
	assert.Equal(t, 4.0, a.Perimeter())
	assert.Equal(t, 40.0, b.Perimeter())
	assert.Equal(t, 1.0, a.Area())
}
