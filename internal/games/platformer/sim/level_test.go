package sim

import (
	"errors"
	"testing"
)

func TestNewLevelDimensions(t *testing.T) {
	grid := [][]Obstacle{
		{o, o},
		{o, o, o, o},
		{w},
	}
	level := NewLevel(grid, nil)

	if level.Width() != 4 {
		t.Errorf("Width() = %d, expected 4", level.Width())
	}
	if level.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", level.Height())
	}
	if level.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", level.Status())
	}
	if level.FinishDelay() != 1 {
		t.Errorf("FinishDelay() = %g, expected 1", level.FinishDelay())
	}
}

func TestNewLevelEmpty(t *testing.T) {
	level := NewLevel(nil, nil)

	if level.Width() != 0 || level.Height() != 0 {
		t.Errorf("empty level should be 0x0, got %dx%d", level.Width(), level.Height())
	}
	if level.Player() != nil {
		t.Error("empty level should have no player")
	}
}

func TestNewLevelFindsFirstPlayer(t *testing.T) {
	coin := NewCoin(V(0, 0), nil)
	first := NewPlayer(V(1, 1))
	second := NewPlayer(V(2, 2))

	level := NewLevel(nil, []*Actor{coin, first, second})

	if level.Player() != first {
		t.Errorf("Player() = %v, expected %v", level.Player(), first)
	}
}

func TestActorAt(t *testing.T) {
	player := NewPlayer(V(0, 1))
	coin := NewCoin(V(0, 1), nil)
	far := NewCoin(V(5, 5), nil)

	level := NewLevel(nil, []*Actor{player, far, coin})

	got, err := level.ActorAt(player)
	if err != nil {
		t.Fatalf("ActorAt() failed: %v", err)
	}
	if got != coin {
		t.Errorf("ActorAt() = %v, expected %v", got, coin)
	}
}

func TestActorAtReturnsFirstInInsertionOrder(t *testing.T) {
	player := NewPlayer(V(0, 1))
	a := NewFireball(V(0, 1), Vector{})
	b := NewFireball(V(0, 0.5), Vector{})

	level := NewLevel(nil, []*Actor{b, player, a})

	got, _ := level.ActorAt(player)
	if got != b {
		t.Errorf("ActorAt() = %v, expected first inserted %v", got, b)
	}
}

func TestActorAtSingleActor(t *testing.T) {
	player := NewPlayer(V(0, 1))
	level := NewLevel(nil, []*Actor{player})

	// A foreign actor overlapping the only registered actor still finds nothing
	other := NewFireball(V(0, 1), Vector{})
	got, err := level.ActorAt(other)
	if err != nil {
		t.Fatalf("ActorAt() failed: %v", err)
	}
	if got != nil {
		t.Errorf("ActorAt() = %v, expected nil with a single actor", got)
	}
}

func TestActorAtNoIntersection(t *testing.T) {
	player := NewPlayer(V(0, 1))
	level := NewLevel(nil, []*Actor{player, NewCoin(V(10, 10), nil)})

	got, _ := level.ActorAt(player)
	if got != nil {
		t.Errorf("ActorAt() = %v, expected nil", got)
	}
}

func TestActorAtNil(t *testing.T) {
	level := NewLevel(nil, []*Actor{NewPlayer(V(0, 0)), NewCoin(V(0, 0), nil)})

	if _, err := level.ActorAt(nil); !errors.Is(err, ErrNilActor) {
		t.Errorf("ActorAt(nil) error = %v, expected ErrNilActor", err)
	}
	if _, err := level.ActorsAt(nil); !errors.Is(err, ErrNilActor) {
		t.Errorf("ActorsAt(nil) error = %v, expected ErrNilActor", err)
	}
}

func TestActorsAtReturnsAll(t *testing.T) {
	player := NewPlayer(V(1, 1))
	c1 := NewCoin(V(1, 1), nil)
	c2 := NewCoin(V(1, 0), nil)
	far := NewCoin(V(8, 8), nil)

	level := NewLevel(nil, []*Actor{c1, player, far, c2})
	hits, err := level.ActorsAt(player)
	if err != nil {
		t.Fatalf("ActorsAt() failed: %v", err)
	}
	if len(hits) != 2 || hits[0] != c1 || hits[1] != c2 {
		t.Errorf("ActorsAt() = %v, expected [%v %v]", hits, c1, c2)
	}
}

func TestObstacleAt(t *testing.T) {
	grid := [][]Obstacle{
		{o, o, o, o},
		{o, w, o, o},
		{o, o, o, l},
		{o, o},
	}
	level := NewLevel(grid, nil)

	tests := []struct {
		name      string
		pos, size Vector
		expected  Obstacle
	}{
		{"empty cell", V(0, 0), V(1, 1), ObstacleNone},
		{"exact wall cell", V(1, 1), V(1, 1), ObstacleWall},
		{"partial overlap with wall", V(0.5, 0.5), V(0.6, 0.6), ObstacleWall},
		{"touching wall edge", V(0, 1), V(1, 1), ObstacleNone},
		{"lava cell", V(2.5, 2), V(1, 1), ObstacleLava},
		{"out left", V(-0.1, 0), V(1, 1), ObstacleWall},
		{"out right", V(3.5, 0), V(1, 1), ObstacleWall},
		{"out top", V(0, -0.5), V(1, 1), ObstacleWall},
		{"out bottom", V(0, 3.5), V(1, 1), ObstacleLava},
		{"side beats bottom", V(-1, 3.5), V(1, 1), ObstacleWall},
		{"short row is empty", V(3, 3), V(1, 1), ObstacleNone},
		{"first match row-major", V(1, 1), V(3, 2), ObstacleWall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := level.ObstacleAt(tc.pos, tc.size); got != tc.expected {
				t.Errorf("ObstacleAt(%v, %v) = %q, expected %q", tc.pos, tc.size, got, tc.expected)
			}
		})
	}
}

func TestRemoveActor(t *testing.T) {
	player := NewPlayer(V(0, 0))
	coin := NewCoin(V(1, 0), nil)
	level := NewLevel(nil, []*Actor{player, coin})

	level.RemoveActor(coin)
	if len(level.Actors()) != 1 || level.Actors()[0] != player {
		t.Errorf("Actors() = %v, expected only player", level.Actors())
	}

	// Removing again is a no-op
	level.RemoveActor(coin)
	level.RemoveActor(NewCoin(V(0, 0), nil))
	if len(level.Actors()) != 1 {
		t.Errorf("Actors() = %v, expected only player", level.Actors())
	}
}

func TestRemoveActorByIdentity(t *testing.T) {
	a := NewCoin(V(1, 1), nil)
	b := NewCoin(V(1, 1), nil) // same geometry, different actor
	level := NewLevel(nil, []*Actor{a, b})

	level.RemoveActor(b)
	actors := level.Actors()
	if len(actors) != 1 || actors[0] != a {
		t.Errorf("Actors() = %v, expected only the first coin", actors)
	}
}

func TestNoMoreActors(t *testing.T) {
	coin := NewCoin(V(0, 0), nil)
	level := NewLevel(nil, []*Actor{NewPlayer(V(0, 0)), coin})

	if level.NoMoreActors(KindCoin) {
		t.Error("NoMoreActors(coin) should be false while a coin is alive")
	}
	if !level.NoMoreActors(KindFireRain) {
		t.Error("NoMoreActors(fire-rain) should be true")
	}

	level.RemoveActor(coin)
	if !level.NoMoreActors(KindCoin) {
		t.Error("NoMoreActors(coin) should be true after removal")
	}
}

func TestPlayerTouchedLose(t *testing.T) {
	for _, touch := range []Touch{TouchLava, TouchFireball} {
		t.Run(touch.String(), func(t *testing.T) {
			level := NewLevel(nil, []*Actor{NewPlayer(V(0, 0))})
			level.PlayerTouched(touch, nil)
			if level.Status() != StatusLost {
				t.Errorf("Status() = %v, expected lost", level.Status())
			}
		})
	}
}

func TestPlayerTouchedWinsOnLastCoin(t *testing.T) {
	coin := NewCoin(V(0, 0), nil)
	level := NewLevel(nil, []*Actor{NewPlayer(V(1, 1)), coin})

	level.PlayerTouched(TouchCoin, coin)

	if level.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won", level.Status())
	}
	for _, a := range level.Actors() {
		if a == coin {
			t.Error("collected coin should be removed")
		}
	}
}

func TestPlayerTouchedCoinsRemaining(t *testing.T) {
	c1 := NewCoin(V(0, 0), nil)
	c2 := NewCoin(V(2, 0), nil)
	level := NewLevel(nil, []*Actor{c1, c2})

	level.PlayerTouched(TouchCoin, c1)
	if level.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running with a coin left", level.Status())
	}
	if level.CountActors(KindCoin) != 1 {
		t.Errorf("CountActors(coin) = %d, expected 1", level.CountActors(KindCoin))
	}
}

func TestPlayerTouchedCoinRequiresCoinActor(t *testing.T) {
	fire := NewFireball(V(0, 0), Vector{})
	level := NewLevel(nil, []*Actor{fire})

	level.PlayerTouched(TouchCoin, fire)
	level.PlayerTouched(TouchCoin, nil)

	if level.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", level.Status())
	}
	if len(level.Actors()) != 1 {
		t.Error("non-coin actor should not be removed by a coin touch")
	}
}

func TestPlayerTouchedIgnoresOtherTouches(t *testing.T) {
	coin := NewCoin(V(0, 0), nil)
	level := NewLevel(nil, []*Actor{coin})

	level.PlayerTouched(TouchWall, nil)
	level.PlayerTouched(TouchNone, nil)
	level.PlayerTouched(TouchPlayer, coin)

	if level.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", level.Status())
	}
	if len(level.Actors()) != 1 {
		t.Error("unrecognized touches should not change actors")
	}
}

func TestStatusNeverChangesOnceSet(t *testing.T) {
	coin := NewCoin(V(0, 0), nil)
	level := NewLevel(nil, []*Actor{coin})

	level.PlayerTouched(TouchCoin, coin)
	level.PlayerTouched(TouchLava, nil)
	if level.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won to stick", level.Status())
	}

	lost := NewLevel(nil, []*Actor{NewCoin(V(0, 0), nil)})
	lost.PlayerTouched(TouchFireball, nil)
	c := lost.Actors()[0]
	lost.PlayerTouched(TouchCoin, c)
	if lost.Status() != StatusLost {
		t.Errorf("Status() = %v, expected lost to stick", lost.Status())
	}
}

func TestFinishDelay(t *testing.T) {
	level := NewLevel(nil, nil)

	level.AdvanceFinish(5)
	if level.FinishDelay() != 1 {
		t.Errorf("running level should not count down, FinishDelay() = %g", level.FinishDelay())
	}

	level.PlayerTouched(TouchLava, nil)
	if level.IsFinished() {
		t.Error("IsFinished() should be false on the tick the status is set")
	}

	level.AdvanceFinish(0.5)
	level.AdvanceFinish(0.5)
	if level.IsFinished() {
		t.Errorf("IsFinished() should be false at delay %g", level.FinishDelay())
	}

	level.AdvanceFinish(0.01)
	if !level.IsFinished() {
		t.Errorf("IsFinished() should be true at delay %g", level.FinishDelay())
	}
}

func TestActorsReturnsCopy(t *testing.T) {
	coin := NewCoin(V(0, 0), nil)
	level := NewLevel(nil, []*Actor{coin})

	actors := level.Actors()
	actors[0] = nil

	if level.Actors()[0] != coin {
		t.Error("modifying Actors() result should not affect the level")
	}
}
