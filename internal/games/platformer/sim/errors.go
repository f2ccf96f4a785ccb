package sim

import "errors"

var (
	// ErrNilActor is returned (or panicked with) when an actor argument is missing.
	ErrNilActor = errors.New("sim: actor must not be nil")

	// ErrInvalidVector is returned when a vector component is NaN or infinite.
	ErrInvalidVector = errors.New("sim: vector components must be finite")

	// ErrNegativeSize is returned when an actor is built with a negative size.
	ErrNegativeSize = errors.New("sim: size components must be >= 0")

	// ErrEmptyPlan is returned when parsing a level with no rows.
	ErrEmptyPlan = errors.New("sim: level plan is empty")

	// ErrInvalidFactory is returned when a dictionary entry cannot build an actor.
	ErrInvalidFactory = errors.New("sim: factory does not produce an actor")

	// ErrReservedSymbol is returned when a dictionary maps an obstacle symbol.
	ErrReservedSymbol = errors.New("sim: symbol is reserved for obstacles")
)
