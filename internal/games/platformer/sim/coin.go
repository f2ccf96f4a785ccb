package sim

import (
	"math"
	"math/rand"
)

const (
	coinSpringSpeed = 8
	coinSpringDist  = 0.07
)

var (
	coinOffset = V(0.2, 0.1)
	coinSize   = V(0.6, 0.6)
)

// NewCoin creates a coin centered in the tile at pos with a random bob phase.
// A nil rng starts the phase at zero.
func NewCoin(pos Vector, rng *rand.Rand) *Actor {
	a := mustActor(KindCoin, pos.Plus(coinOffset), coinSize, Vector{})
	a.springSpeed = coinSpringSpeed
	a.springDist = coinSpringDist
	if rng != nil {
		a.spring = rng.Float64() * 2 * math.Pi
	}
	return a
}

// Spring returns the current bob phase.
func (a *Actor) Spring() float64 { return a.spring }

// UpdateSpring advances the bob phase. The phase is never wrapped; it is
// only used inside sin.
func (a *Actor) UpdateSpring(dt float64) {
	a.spring += a.springSpeed * dt
}

// SpringVector returns the vertical offset for the current phase.
func (a *Actor) SpringVector() Vector {
	return V(0, math.Sin(a.spring)*a.springDist)
}

func (a *Actor) nextCoinPosition(dt float64) Vector {
	a.UpdateSpring(dt)
	return a.start.Plus(a.SpringVector())
}
