// Package shapes is a small playground for interface-based polymorphism in
// Go: one Shape capability, two sealed variants, one call site.
//
// 🚀 What is in here?
//
//	shape/       — Shape interface, Square and Circle variants, Measure/Render
//	cmd/shapes/  — command printing the demo report to stdout
//
// ✨ Why?
//
//   - One contract – Perimeter and Area resolve through the interface, never
//     through a type switch at the call site
//   - Closed set – variants are sealed to the shape package; a variant missing
//     a method fails to compile
//   - No surprises – dimensions are taken as-is, zero and negative included
//
// Quick example:
//
//	shapes := []shape.Shape{shape.NewSquare("sq", 3), shape.NewCircle("ci", 2)}
//	_ = shape.Render(os.Stdout, shapes)
//
//	sq is a Square 12.00 9.00
//	ci is a Circle 12.57 12.57
//
//	go install github.com/katalvlaran/shapes/cmd/shapes@latest
package shapes
