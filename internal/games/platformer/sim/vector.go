// Package sim implements the platformer simulation core: vectors, actors,
// the tile level and the tick driver. It has no terminal or storage
// dependencies so it can be driven by tests, the TUI or a headless runner.
package sim

import (
	"fmt"
	"math"
)

// Vector is a 2D point or displacement in tile units.
// It is a value type; every operation returns a new Vector.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum.
func (v Vector) Plus(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times returns the vector scaled by factor.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// IsFinite reports whether both components are real numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// String returns "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
