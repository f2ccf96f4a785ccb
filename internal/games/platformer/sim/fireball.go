package sim

// Fireball speeds are fixed per variant, in tiles per second.
var (
	fireballSize            = V(1, 1)
	horizontalFireballSpeed = V(2, 0)
	verticalFireballSpeed   = V(0, 2)
	fireRainSpeed           = V(0, 3)
)

// NewFireball creates a generic fireball that bounces back on obstacles.
func NewFireball(pos, speed Vector) *Actor {
	return mustActor(KindFireball, pos, fireballSize, speed)
}

// NewHorizontalFireball creates a fireball moving right at 2 tiles/s.
func NewHorizontalFireball(pos Vector) *Actor {
	return mustActor(KindHorizontalFireball, pos, fireballSize, horizontalFireballSpeed)
}

// NewVerticalFireball creates a fireball moving down at 2 tiles/s.
func NewVerticalFireball(pos Vector) *Actor {
	return mustActor(KindVerticalFireball, pos, fireballSize, verticalFireballSpeed)
}

// NewFireRain creates a falling fireball that restarts from its spawn point
// whenever it hits something.
func NewFireRain(pos Vector) *Actor {
	return mustActor(KindFireRain, pos, fireballSize, fireRainSpeed)
}

// NextPosition returns where the actor would be after dt at constant speed.
func (a *Actor) NextPosition(dt float64) Vector {
	return a.pos.Plus(a.speed.Times(dt))
}

// HandleObstacle reacts to a blocked move: fire rain jumps back to its
// spawn point, every other fireball reverses direction.
func (a *Actor) HandleObstacle() {
	if a.kind == KindFireRain {
		a.pos = a.start
		return
	}
	a.speed = a.speed.Times(-1)
}

// actFireball looks ahead and either commits the move or deflects.
// A fireball never moves into an occupied cell, not even partially.
func (a *Actor) actFireball(dt float64, level *Level) {
	next := a.NextPosition(dt)
	if level.ObstacleAt(next, a.size) != ObstacleNone {
		a.HandleObstacle()
		return
	}
	a.pos = next
}
