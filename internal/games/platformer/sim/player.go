package sim

var (
	playerOffset = V(0, -0.5)
	playerSize   = V(0.8, 1.5)
)

// NewPlayer creates the player standing in the tile at pos. The box is taller
// than one tile and sticks half a tile above the spawn cell.
func NewPlayer(pos Vector) *Actor {
	return mustActor(KindPlayer, pos.Plus(playerOffset), playerSize, Vector{})
}
