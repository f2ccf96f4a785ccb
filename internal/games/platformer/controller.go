package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Controller moves the player from keyboard input and implements sim.Mover.
//
// Terminals deliver key presses and auto-repeats but never releases, so a
// press keeps its direction active for a window of ticks. Holding the key
// refreshes the window through auto-repeat.
type Controller struct {
	physics   config.PlatformerPhysics
	holdTicks int

	left  int // Ticks left on the left-run window
	right int // Ticks left on the right-run window
	jump  int // Ticks left on the jump buffer

	err error // First move the player rejected
}

// NewController creates a controller with the given physics and hold window.
func NewController(physics config.PlatformerPhysics, controls config.PlatformerControls) *Controller {
	hold := controls.HoldTicks
	if hold < 1 {
		hold = 1
	}
	return &Controller{physics: physics, holdTicks: hold}
}

// Press applies one tick of input. Opposite directions cancel each other.
func (c *Controller) Press(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		c.left, c.right = c.holdTicks, 0
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		c.right, c.left = c.holdTicks, 0
	}
	if in.Has(core.ActionJump) {
		c.jump = c.holdTicks
	}
}

// EndTick ages the hold windows by one tick.
func (c *Controller) EndTick() {
	c.left = max(0, c.left-1)
	c.right = max(0, c.right-1)
	c.jump = max(0, c.jump-1)
}

// Reset forgets every held key and any rejected move.
func (c *Controller) Reset() {
	c.left, c.right, c.jump = 0, 0, 0
	c.err = nil
}

// Err returns the first position or speed the player rejected since the
// last Reset. The player stays put once a move is rejected.
func (c *Controller) Err() error {
	return c.err
}

func (c *Controller) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Direction returns -1, 0 or 1 for the held horizontal direction.
func (c *Controller) Direction() int {
	switch {
	case c.left > 0:
		return -1
	case c.right > 0:
		return 1
	default:
		return 0
	}
}

// Move advances the player by dt: horizontally first, then vertically under
// gravity. Walls block movement. Lava is reported to the level.
func (c *Controller) Move(dt float64, level *sim.Level) {
	player := level.Player()
	if player == nil || c.err != nil {
		return
	}

	speedX := float64(c.Direction()) * c.physics.MoveSpeed
	c.moveX(player, speedX, dt, level)
	speedY := c.moveY(player, dt, level)

	if err := player.SetSpeed(sim.V(speedX, speedY)); err != nil {
		c.fail(err)
	}
}

func (c *Controller) moveX(player *sim.Actor, speedX, dt float64, level *sim.Level) {
	next := player.Pos().Plus(sim.V(speedX*dt, 0))
	obstacle := level.ObstacleAt(next, player.Size())
	if obstacle != sim.ObstacleNone {
		level.PlayerTouched(obstacle.Touch(), nil)
		return
	}
	if err := player.SetPos(next); err != nil {
		c.fail(err)
	}
}

// moveY returns the vertical speed after the move. Landing on an obstacle
// stops the fall, and a buffered jump launches from it.
func (c *Controller) moveY(player *sim.Actor, dt float64, level *sim.Level) float64 {
	speedY := player.Speed().Y + c.physics.Gravity*dt
	next := player.Pos().Plus(sim.V(0, speedY*dt))
	obstacle := level.ObstacleAt(next, player.Size())
	if obstacle == sim.ObstacleNone {
		if err := player.SetPos(next); err != nil {
			c.fail(err)
			return 0
		}
		return speedY
	}

	level.PlayerTouched(obstacle.Touch(), nil)
	if c.jump > 0 && speedY > 0 {
		c.jump = 0
		return -c.physics.JumpSpeed
	}
	return 0
}
