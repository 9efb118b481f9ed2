// Package geom provides the float geometry primitives used by the simulation:
// a mutable 2D vector and an axis-aligned box with one step of move history.
package geom

import "fmt"

// Vector2 is a mutable 2D coordinate (position or size).
type Vector2 struct {
	X, Y float64
}

// Vec creates a Vector2
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Set replaces both components
func (v *Vector2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Translate adds (dx, dy) to the vector
func (v *Vector2) Translate(dx, dy float64) {
	v.X += dx
	v.Y += dy
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}
