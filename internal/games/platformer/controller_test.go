package platformer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

const epsilon = 1e-9

func parseLevel(t *testing.T, plan ...string) *sim.Level {
	t.Helper()
	level, err := sim.NewParser(sim.DefaultDictionary(rand.New(rand.NewSource(1)))).Parse(plan)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return level
}

func newController(holdTicks int) *Controller {
	cfg := config.DefaultPlatformerConfig()
	cfg.Controls.HoldTicks = holdTicks
	return NewController(cfg.Physics, cfg.Controls)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestControllerStandingStill(t *testing.T) {
	level := parseLevel(t,
		"     ",
		"@    ",
		"xxxxx",
	)
	c := newController(5)
	start := level.Player().Pos()

	for range 10 {
		c.Move(1.0/60.0, level)
	}

	if got := level.Player().Pos(); got != start {
		t.Errorf("player drifted from %v to %v", start, got)
	}
	if got := level.Player().Speed().Y; got != 0 {
		t.Errorf("speed.Y = %g on the ground, expected 0", got)
	}
}

func TestControllerRunsRight(t *testing.T) {
	level := parseLevel(t,
		"     ",
		"@    ",
		"xxxxx",
	)
	c := newController(5)
	c.Press(frame(core.ActionRight))
	c.Move(0.1, level)

	if got := level.Player().Pos().X; math.Abs(got-0.7) > epsilon {
		t.Errorf("X = %g, expected 0.7", got)
	}
	if got := level.Player().Speed().X; got != 7 {
		t.Errorf("speed.X = %g, expected 7", got)
	}
}

func TestControllerWallBlocks(t *testing.T) {
	level := parseLevel(t,
		"  ",
		"@x",
		"xx",
	)
	c := newController(5)
	c.Press(frame(core.ActionRight))
	c.Move(0.1, level)

	if got := level.Player().Pos().X; got != 0 {
		t.Errorf("X = %g, expected the wall to block at 0", got)
	}
	if level.Status() != sim.StatusRunning {
		t.Errorf("walls must not end the level, status = %v", level.Status())
	}
}

func TestControllerFalls(t *testing.T) {
	level := parseLevel(t,
		"  ",
		"@ ",
		"  ",
		"  ",
		"xx",
	)
	c := newController(5)
	c.Move(0.1, level)

	p := level.Player()
	if got := p.Speed().Y; math.Abs(got-3) > epsilon {
		t.Errorf("speed.Y = %g, expected 3 after 0.1s of gravity", got)
	}
	if got := p.Pos().Y; math.Abs(got-0.8) > epsilon {
		t.Errorf("Y = %g, expected 0.8", got)
	}
}

func TestControllerJump(t *testing.T) {
	level := parseLevel(t,
		"     ",
		"     ",
		"@    ",
		"xxxxx",
	)
	c := newController(5)
	c.Press(frame(core.ActionJump))
	c.Move(1.0/60.0, level)

	if got := level.Player().Speed().Y; got != -17 {
		t.Fatalf("speed.Y = %g, expected -17 after jumping", got)
	}

	startY := level.Player().Pos().Y
	c.Move(1.0/60.0, level)
	if got := level.Player().Pos().Y; got >= startY {
		t.Errorf("Y = %g, expected to rise above %g", got, startY)
	}

	// The jump buffer is consumed by the jump
	for range 60 {
		c.Move(1.0/60.0, level)
	}
	if got := level.Player().Speed().Y; got < 0 {
		t.Errorf("speed.Y = %g, expected no second jump", got)
	}
}

func TestControllerJumpNeedsGround(t *testing.T) {
	level := parseLevel(t,
		"  ",
		"@ ",
		"  ",
		"  ",
		"  ",
		"xx",
	)
	c := newController(1)
	c.Press(frame(core.ActionJump))
	c.Move(1.0/60.0, level)

	if got := level.Player().Speed().Y; got < 0 {
		t.Errorf("speed.Y = %g, jumped in mid-air", got)
	}
}

func TestControllerLavaLoses(t *testing.T) {
	level := parseLevel(t,
		" ",
		"@",
		"!",
	)
	newController(5).Move(1.0/60.0, level)

	if level.Status() != sim.StatusLost {
		t.Errorf("Status = %v, expected lost on lava", level.Status())
	}
}

func TestControllerHoldWindow(t *testing.T) {
	c := newController(3)

	c.Press(frame(core.ActionLeft))
	if c.Direction() != -1 {
		t.Fatalf("Direction = %d, expected -1", c.Direction())
	}
	for i := range 3 {
		if c.Direction() != -1 {
			t.Errorf("tick %d: window closed early", i)
		}
		c.EndTick()
	}
	if c.Direction() != 0 {
		t.Errorf("Direction = %d after window, expected 0", c.Direction())
	}

	c.Press(frame(core.ActionLeft))
	c.Press(frame(core.ActionRight))
	if c.Direction() != 1 {
		t.Errorf("Direction = %d, expected the latest press to win", c.Direction())
	}

	c.Press(frame(core.ActionLeft, core.ActionRight))
	if c.Direction() != 1 {
		t.Errorf("Direction = %d, opposite keys together should change nothing", c.Direction())
	}

	c.Reset()
	if c.Direction() != 0 {
		t.Errorf("Direction = %d after Reset, expected 0", c.Direction())
	}
}

func TestControllerRejectedMoveStopsPlayer(t *testing.T) {
	level := parseLevel(t,
		"     ",
		"@    ",
		"xxxxx",
	)
	cfg := config.DefaultPlatformerConfig()
	cfg.Physics.JumpSpeed = math.NaN()
	c := NewController(cfg.Physics, cfg.Controls)
	start := level.Player().Pos()

	c.Press(frame(core.ActionJump))
	c.Move(1.0/60.0, level)
	c.Move(1.0/60.0, level)

	if !errors.Is(c.Err(), sim.ErrInvalidVector) {
		t.Fatalf("Err() = %v, expected ErrInvalidVector", c.Err())
	}
	if got := level.Player().Pos(); got != start {
		t.Errorf("player moved to %v after a rejected move", got)
	}
	if got := level.Player().Speed(); !got.IsFinite() {
		t.Errorf("speed = %v, expected the last finite value", got)
	}

	c.Reset()
	if c.Err() != nil {
		t.Errorf("Reset should clear Err(), got %v", c.Err())
	}
}
