// Package core provides the platform-neutral types shared by the game and
// the terminal front end: input frames, the screen buffer, runtime config and
// integer geometry for cameras. It has no external dependencies so game logic
// stays testable without a terminal.
package core

// Rect is an integer cell rectangle, used for viewports and HUD layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Follow moves the rectangle so (cx, cy) sits in its middle, then clamps it
// inside a world of worldW x worldH cells. A world smaller than the
// rectangle pins it to the origin on that axis.
func (r Rect) Follow(cx, cy, worldW, worldH int) Rect {
	r.X = Clamp(cx-r.W/2, 0, Max(0, worldW-r.W))
	r.Y = Clamp(cy-r.H/2, 0, Max(0, worldH-r.H))
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
