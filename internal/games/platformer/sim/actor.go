package sim

import "fmt"

// Actor is any positioned, sized entity living in a level.
// The variant behavior is selected by Kind; variant state (fire rain spawn
// point, coin spring) lives in the same struct and is ignored by other kinds.
type Actor struct {
	pos   Vector // Top-left corner
	size  Vector
	speed Vector // Tile units per second
	kind  Kind

	start Vector // Spawn anchor for fire rain and coins

	spring      float64 // Coin bob phase
	springSpeed float64
	springDist  float64
}

// NewActor builds an actor of the given kind.
// All vectors must be finite and size components non-negative.
func NewActor(kind Kind, pos, size, speed Vector) (*Actor, error) {
	if !pos.IsFinite() {
		return nil, fmt.Errorf("pos %v: %w", pos, ErrInvalidVector)
	}
	if !size.IsFinite() {
		return nil, fmt.Errorf("size %v: %w", size, ErrInvalidVector)
	}
	if !speed.IsFinite() {
		return nil, fmt.Errorf("speed %v: %w", speed, ErrInvalidVector)
	}
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("size %v: %w", size, ErrNegativeSize)
	}
	return &Actor{
		pos:   pos,
		size:  size,
		speed: speed,
		kind:  kind,
		start: pos,
	}, nil
}

// mustActor is used by the variant constructors, whose sizes and speeds are
// constants; only the spawn position can be invalid.
func mustActor(kind Kind, pos, size, speed Vector) *Actor {
	a, err := NewActor(kind, pos, size, speed)
	if err != nil {
		panic(fmt.Sprintf("sim: new %s: %v", kind, err))
	}
	return a
}

// Kind returns the actor variant.
func (a *Actor) Kind() Kind { return a.kind }

// Pos returns the top-left corner.
func (a *Actor) Pos() Vector { return a.pos }

// Size returns width and height.
func (a *Actor) Size() Vector { return a.size }

// Speed returns the current velocity.
func (a *Actor) Speed() Vector { return a.speed }

// Left returns the x-coordinate of the left edge.
func (a *Actor) Left() float64 { return a.pos.X }

// Top returns the y-coordinate of the top edge.
func (a *Actor) Top() float64 { return a.pos.Y }

// Right returns the x-coordinate of the right edge.
func (a *Actor) Right() float64 { return a.pos.X + a.size.X }

// Bottom returns the y-coordinate of the bottom edge.
func (a *Actor) Bottom() float64 { return a.pos.Y + a.size.Y }

// SetPos moves the actor. Used by the player controller, which is not part
// of the actor's own update.
func (a *Actor) SetPos(pos Vector) error {
	if !pos.IsFinite() {
		return fmt.Errorf("pos %v: %w", pos, ErrInvalidVector)
	}
	a.pos = pos
	return nil
}

// SetSpeed replaces the velocity.
func (a *Actor) SetSpeed(speed Vector) error {
	if !speed.IsFinite() {
		return fmt.Errorf("speed %v: %w", speed, ErrInvalidVector)
	}
	a.speed = speed
	return nil
}

// Act advances the actor by dt seconds. Players do nothing here; their
// movement is driven by input outside the core.
func (a *Actor) Act(dt float64, level *Level) {
	switch {
	case a.kind == KindCoin:
		a.pos = a.nextCoinPosition(dt)
	case a.kind.IsFireball():
		a.actFireball(dt, level)
	}
}

// Intersects reports whether the two bounding boxes overlap with positive
// area. An actor never intersects itself. Touching edges do not count.
// Passing nil is a programming error and panics.
func (a *Actor) Intersects(other *Actor) bool {
	if other == nil {
		panic(ErrNilActor)
	}
	if a == other {
		return false
	}
	return !(other.Left() >= a.Right() ||
		other.Right() <= a.Left() ||
		other.Top() >= a.Bottom() ||
		other.Bottom() <= a.Top())
}

// String returns a short description for logs and test failures.
func (a *Actor) String() string {
	return fmt.Sprintf("%s@%v", a.kind, a.pos)
}
