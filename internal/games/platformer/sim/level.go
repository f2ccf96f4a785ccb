package sim

import "math"

// initialFinishDelay is how long (in seconds) a decided level keeps
// rendering before it reports finished.
const initialFinishDelay = 1.0

// Level owns the static grid and the live actors of one playthrough.
type Level struct {
	grid        [][]Obstacle
	actors      []*Actor
	player      *Actor
	width       int
	height      int
	status      Status
	finishDelay float64
}

// NewLevel creates a level from a parsed grid and actor list. Rows may have
// different lengths; cells past the end of a row are empty. The first player
// actor becomes the level's player.
func NewLevel(grid [][]Obstacle, actors []*Actor) *Level {
	l := &Level{
		grid:        grid,
		actors:      make([]*Actor, 0, len(actors)),
		height:      len(grid),
		finishDelay: initialFinishDelay,
	}
	for _, row := range grid {
		if len(row) > l.width {
			l.width = len(row)
		}
	}
	for _, a := range actors {
		if a == nil {
			continue
		}
		l.actors = append(l.actors, a)
		if l.player == nil && a.kind == KindPlayer {
			l.player = a
		}
	}
	return l
}

// Width returns the length of the longest grid row.
func (l *Level) Width() int { return l.width }

// Height returns the number of grid rows.
func (l *Level) Height() int { return l.height }

// Player returns the level's player, or nil if the plan had none.
func (l *Level) Player() *Actor { return l.player }

// Status returns the current outcome.
func (l *Level) Status() Status { return l.status }

// FinishDelay returns the remaining post-decision countdown.
func (l *Level) FinishDelay() float64 { return l.finishDelay }

// IsFinished reports whether the level is decided and its finish delay has
// run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusRunning && l.finishDelay < 0
}

// AdvanceFinish counts the finish delay down. It does nothing while the
// level is still running.
func (l *Level) AdvanceFinish(dt float64) {
	if l.status == StatusRunning {
		return
	}
	l.finishDelay -= dt
}

// Actors returns a copy of the live actors in insertion order.
func (l *Level) Actors() []*Actor {
	out := make([]*Actor, len(l.actors))
	copy(out, l.actors)
	return out
}

// Cell returns the obstacle at integer cell (x, y). Cells outside the grid
// or past the end of a short row are empty.
func (l *Level) Cell(x, y int) Obstacle {
	if y < 0 || y >= len(l.grid) {
		return ObstacleNone
	}
	row := l.grid[y]
	if x < 0 || x >= len(row) {
		return ObstacleNone
	}
	return row[x]
}

// ActorAt returns the first live actor (in insertion order) overlapping a,
// or nil. With fewer than two actors no collision is possible.
func (l *Level) ActorAt(a *Actor) (*Actor, error) {
	if a == nil {
		return nil, ErrNilActor
	}
	if len(l.actors) < 2 {
		return nil, nil
	}
	for _, other := range l.actors {
		if other.Intersects(a) {
			return other, nil
		}
	}
	return nil, nil
}

// ActorsAt returns every live actor overlapping a, in insertion order.
func (l *Level) ActorsAt(a *Actor) ([]*Actor, error) {
	if a == nil {
		return nil, ErrNilActor
	}
	var hits []*Actor
	for _, other := range l.actors {
		if other.Intersects(a) {
			hits = append(hits, other)
		}
	}
	return hits, nil
}

// ObstacleAt returns what blocks a box of the given size at pos.
// Any partial cell coverage counts. Leaving the grid through the sides or
// top is a wall; falling out through the bottom is lava. Side and top are
// checked first.
func (l *Level) ObstacleAt(pos, size Vector) Obstacle {
	left := int(math.Floor(pos.X))
	right := int(math.Ceil(pos.X + size.X))
	top := int(math.Floor(pos.Y))
	bottom := int(math.Ceil(pos.Y + size.Y))

	if left < 0 || right > l.width || top < 0 {
		return ObstacleWall
	}
	if bottom > l.height {
		return ObstacleLava
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if cell := l.Cell(x, y); cell != ObstacleNone {
				return cell
			}
		}
	}
	return ObstacleNone
}

// RemoveActor drops a from the live set. Unknown actors are ignored.
func (l *Level) RemoveActor(a *Actor) {
	for i, other := range l.actors {
		if other == a {
			l.actors = append(l.actors[:i], l.actors[i+1:]...)
			return
		}
	}
}

// NoMoreActors reports whether no live actor has the given kind.
func (l *Level) NoMoreActors(kind Kind) bool {
	for _, a := range l.actors {
		if a.kind == kind {
			return false
		}
	}
	return true
}

// CountActors returns how many live actors have the given kind.
func (l *Level) CountActors(kind Kind) int {
	n := 0
	for _, a := range l.actors {
		if a.kind == kind {
			n++
		}
	}
	return n
}

// PlayerTouched applies the effect of the player touching something.
// Lava and fireballs lose the level. A coin touch collects the coin (only
// when the actor really is a coin) and wins once none are left. Anything
// else is ignored.
func (l *Level) PlayerTouched(touch Touch, actor *Actor) {
	if touch.IsHazard() {
		l.setStatus(StatusLost)
		return
	}
	if touch == TouchCoin && actor != nil && actor.kind == KindCoin {
		l.RemoveActor(actor)
		if l.NoMoreActors(KindCoin) {
			l.setStatus(StatusWon)
		}
	}
}

func (l *Level) setStatus(next Status) {
	l.status = l.status.transition(next)
}

// Grid returns a copy of the obstacle grid.
func (l *Level) Grid() [][]Obstacle {
	out := make([][]Obstacle, len(l.grid))
	for y, row := range l.grid {
		out[y] = make([]Obstacle, len(row))
		copy(out[y], row)
	}
	return out
}
