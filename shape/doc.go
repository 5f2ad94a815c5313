// Package shape models a closed set of planar shapes and measures them
// through one shared interface.
//
// What:
//
//   - Shape is the capability every variant satisfies: Name, Kind,
//     Perimeter and Area.
//   - Square and Circle are the only variants. Each owns its dimension
//     (side or radius) and computes both values from it alone.
//   - Measure, MeasureAll and Render walk a []Shape in insertion order and
//     dispatch through the interface, never on the concrete type.
//
// Formulas:
//
//   - Square: Perimeter = 4·side,     Area = side².
//   - Circle: Perimeter = 2·π·radius, Area = π·radius².
//
// Dimensions are not validated. Zero and negative values flow straight into
// the formulas, so Square("z", 0) measures 0/0 and Circle("neg", -1)
// measures ≈ -6.28/3.14.
//
// The set is sealed: Shape carries an unexported method supplied by the
// embedded base, so only variants declared here can satisfy it. The base
// itself provides no Perimeter or Area, so a variant missing either one is a
// compile error rather than a runtime failure.
//
// Report line:
//
//	<name> is a <Kind> <perimeter %.2f> <area %.2f>
//
// Errors:
//
//   - ErrNilShape: a nil Shape reached Measure, MeasureAll or Render.
//   - ErrUnimplemented: a typed-nil variant has no dimension to measure.
//
// Complexity: every operation is O(1) per shape; MeasureAll and Render are
// O(n) over the input slice.
package shape
