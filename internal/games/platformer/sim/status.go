package sim

// Status is the outcome state of a level. It starts Running and moves at
// most once, to Won or Lost.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

// String returns "running", "won" or "lost".
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "running"
	}
}

// Terminal reports whether the level has been decided.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// transition returns the status after requesting next. Terminal states
// absorb every request.
func (s Status) transition(next Status) Status {
	if s.Terminal() || !next.Terminal() {
		return s
	}
	return next
}
