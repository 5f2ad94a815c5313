// SPDX-License-Identifier: MIT
// Package: shapes/shape
//
// errors.go — sentinel errors for the shape package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (slice index, shape name) is attached with %w at the call site.
//   • Library code never panics on caller input.

package shape

import "errors"

// ErrNilShape indicates that a nil Shape interface value was handed to
// Measure, MeasureAll or Render.
var ErrNilShape = errors.New("shape: nil shape")

// ErrUnimplemented indicates that an instance cannot supply Perimeter or
// Area. Values of Square and Circle always can; a typed-nil *Square or
// *Circle cannot, since it has no dimension to compute from.
var ErrUnimplemented = errors.New("shape: unimplemented operation")
