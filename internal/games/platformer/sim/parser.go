package sim

import "fmt"

// Obstacle symbols in level text.
const (
	SymbolWall  = 'x'
	SymbolLava  = '!'
	SymbolEmpty = ' '
)

// Parser turns level text (one string per row) into a Level.
type Parser struct {
	dict *Dictionary
}

// NewParser creates a parser using the given actor dictionary.
// A nil dictionary spawns no actors.
func NewParser(dict *Dictionary) *Parser {
	if dict == nil {
		dict = &Dictionary{}
	}
	return &Parser{dict: dict}
}

// ActorFromSymbol returns the factory mapped to symbol.
func (p *Parser) ActorFromSymbol(symbol rune) (Factory, bool) {
	return p.dict.ActorFromSymbol(symbol)
}

// ObstacleFromSymbol maps 'x' to wall and '!' to lava. Every other symbol is
// an empty cell.
func (p *Parser) ObstacleFromSymbol(symbol rune) Obstacle {
	return obstacleFromSymbol(symbol)
}

func obstacleFromSymbol(symbol rune) Obstacle {
	switch symbol {
	case SymbolWall:
		return ObstacleWall
	case SymbolLava:
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// CreateGrid maps every symbol of the plan to an obstacle. Row lengths are
// preserved.
func (p *Parser) CreateGrid(plan []string) [][]Obstacle {
	grid := make([][]Obstacle, len(plan))
	for y, line := range plan {
		runes := []rune(line)
		grid[y] = make([]Obstacle, len(runes))
		for x, r := range runes {
			grid[y][x] = p.ObstacleFromSymbol(r)
		}
	}
	return grid
}

// CreateActors spawns an actor for every mapped symbol, scanning rows top to
// bottom and left to right. The spawn position is (column, row).
func (p *Parser) CreateActors(plan []string) []*Actor {
	var actors []*Actor
	for y, line := range plan {
		for x, r := range []rune(line) {
			f, ok := p.dict.ActorFromSymbol(r)
			if !ok {
				continue
			}
			if a := f(V(float64(x), float64(y))); a != nil {
				actors = append(actors, a)
			}
		}
	}
	return actors
}

// Parse builds a level from the plan.
func (p *Parser) Parse(plan []string) (*Level, error) {
	if len(plan) == 0 {
		return nil, fmt.Errorf("parse: %w", ErrEmptyPlan)
	}
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan)), nil
}
