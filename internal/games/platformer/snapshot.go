package platformer

import (
	"hash/fnv"
	"math"
)

// Snapshot captures the game state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       uint64
	LevelIndex int
	Score      int
	Lives      int
	Status     string
	GameOver   bool

	// Actor state, 5 values per actor: Kind, X, Y, SpeedX, SpeedY
	ActorCount int
	ActorData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		LevelIndex: g.levelIndex,
		Score:      g.score,
		Lives:      g.lives,
		GameOver:   g.gameOver,
	}

	level := g.Level()
	if level == nil {
		return s
	}
	s.Status = level.Status().String()

	actors := level.Actors()
	s.ActorCount = len(actors)
	s.ActorData = make([]float64, 0, len(actors)*5)
	for _, a := range actors {
		s.ActorData = append(s.ActorData,
			float64(a.Kind()), a.Pos().X, a.Pos().Y, a.Speed().X, a.Speed().Y)
	}
	return s
}

// Hash returns an FNV-1a hash of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	put(s.Tick)
	put(uint64(s.LevelIndex))
	put(uint64(s.Score))
	put(uint64(s.Lives))
	h.Write([]byte(s.Status))
	if s.GameOver {
		put(1)
	} else {
		put(0)
	}
	put(uint64(s.ActorCount))
	for _, v := range s.ActorData {
		put(math.Float64bits(v))
	}
	return h.Sum64()
}
