package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// Factory builds an actor spawned in the tile at pos.
type Factory func(pos Vector) *Actor

// Dictionary maps level-text symbols to actor factories. Entries are
// validated once when the dictionary is built, not per grid cell.
type Dictionary struct {
	factories map[rune]Factory
	kinds     map[rune]Kind
}

// NewDictionary validates and copies the symbol table. Each factory is
// invoked once at the origin to check that it yields an actor.
func NewDictionary(entries map[rune]Factory) (*Dictionary, error) {
	d := &Dictionary{
		factories: make(map[rune]Factory, len(entries)),
		kinds:     make(map[rune]Kind, len(entries)),
	}
	for symbol, f := range entries {
		if obstacleFromSymbol(symbol) != ObstacleNone {
			return nil, fmt.Errorf("symbol %q: %w", symbol, ErrReservedSymbol)
		}
		if f == nil {
			return nil, fmt.Errorf("symbol %q: nil factory: %w", symbol, ErrInvalidFactory)
		}
		sample := f(Vector{})
		if sample == nil {
			return nil, fmt.Errorf("symbol %q: %w", symbol, ErrInvalidFactory)
		}
		d.factories[symbol] = f
		d.kinds[symbol] = sample.kind
	}
	return d, nil
}

// DefaultDictionary returns the standard symbol table:
//
//	'@' = player
//	'o' = coin
//	'=' = horizontal fireball
//	'|' = vertical fireball
//	'v' = fire rain
//
// Coin phases are drawn from rng.
func DefaultDictionary(rng *rand.Rand) *Dictionary {
	d, err := NewDictionary(map[rune]Factory{
		'@': NewPlayer,
		'o': func(pos Vector) *Actor { return NewCoin(pos, rng) },
		'=': NewHorizontalFireball,
		'|': NewVerticalFireball,
		'v': NewFireRain,
	})
	if err != nil {
		panic(fmt.Sprintf("sim: default dictionary: %v", err))
	}
	return d
}

// ActorFromSymbol returns the factory for symbol. Unmapped symbols yield
// false, not an error.
func (d *Dictionary) ActorFromSymbol(symbol rune) (Factory, bool) {
	f, ok := d.factories[symbol]
	return f, ok
}

// KindOf returns the actor kind a symbol spawns.
func (d *Dictionary) KindOf(symbol rune) (Kind, bool) {
	k, ok := d.kinds[symbol]
	return k, ok
}

// Symbols returns the mapped symbols in ascending order.
func (d *Dictionary) Symbols() []rune {
	out := make([]rune, 0, len(d.factories))
	for s := range d.factories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
