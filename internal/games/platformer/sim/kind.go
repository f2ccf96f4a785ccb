package sim

// Kind identifies the fixed set of actor variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindCoin
	KindFireball
	KindHorizontalFireball
	KindVerticalFireball
	KindFireRain
)

// String returns the kind name used in level packs and logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindFireball:
		return "fireball"
	case KindHorizontalFireball:
		return "horizontal-fireball"
	case KindVerticalFireball:
		return "vertical-fireball"
	case KindFireRain:
		return "fire-rain"
	default:
		return "unknown"
	}
}

// IsFireball reports whether the kind belongs to the fireball family.
func (k Kind) IsFireball() bool {
	switch k {
	case KindFireball, KindHorizontalFireball, KindVerticalFireball, KindFireRain:
		return true
	}
	return false
}

// Touch returns what the player touches when it overlaps an actor of this kind.
// Every fireball variant is a fireball touch.
func (k Kind) Touch() Touch {
	switch {
	case k == KindPlayer:
		return TouchPlayer
	case k == KindCoin:
		return TouchCoin
	case k.IsFireball():
		return TouchFireball
	default:
		return TouchNone
	}
}

// Obstacle is the content of a static grid cell.
type Obstacle int

const (
	ObstacleNone Obstacle = iota // Empty cell
	ObstacleWall
	ObstacleLava
)

// String returns "wall", "lava" or "" for an empty cell.
func (o Obstacle) String() string {
	switch o {
	case ObstacleWall:
		return "wall"
	case ObstacleLava:
		return "lava"
	default:
		return ""
	}
}

// Touch converts a grid obstacle into a player touch.
func (o Obstacle) Touch() Touch {
	switch o {
	case ObstacleWall:
		return TouchWall
	case ObstacleLava:
		return TouchLava
	default:
		return TouchNone
	}
}

// Touch is what the player came into contact with during a tick.
type Touch int

const (
	TouchNone Touch = iota
	TouchWall
	TouchLava
	TouchFireball
	TouchCoin
	TouchPlayer
)

// String returns the touch name.
func (t Touch) String() string {
	switch t {
	case TouchWall:
		return "wall"
	case TouchLava:
		return "lava"
	case TouchFireball:
		return "fireball"
	case TouchCoin:
		return "coin"
	case TouchPlayer:
		return "player"
	default:
		return "none"
	}
}

// IsHazard reports whether the touch ends the level in defeat.
func (t Touch) IsHazard() bool {
	return t == TouchLava || t == TouchFireball
}
