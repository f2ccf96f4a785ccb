package sim

// DefaultMaxStep is the longest slice of time simulated in one pass.
// Longer steps are split so fast actors cannot tunnel through a tile.
const DefaultMaxStep = 0.05

// Mover moves the player before the other actors act. It stands in for
// input handling, which lives outside the core.
type Mover interface {
	Move(dt float64, level *Level)
}

// MoverFunc adapts a function to the Mover interface.
type MoverFunc func(dt float64, level *Level)

// Move calls f(dt, level).
func (f MoverFunc) Move(dt float64, level *Level) { f(dt, level) }

// StepResult describes what happened during one Runner.Step.
type StepResult struct {
	Status    Status
	Finished  bool
	Touches   []Touch // Non-empty touches resolved this step, in order
	Collected int     // Coins collected this step
}

// Runner drives a level tick by tick: move the player, let every actor act,
// then resolve what the player touches. Once the level is decided it only
// counts down the finish delay.
type Runner struct {
	level   *Level
	mover   Mover
	maxStep float64
	ticks   int
	elapsed float64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMaxStep sets the longest simulated slice. Values <= 0 keep the default.
func WithMaxStep(step float64) RunnerOption {
	return func(r *Runner) {
		if step > 0 {
			r.maxStep = step
		}
	}
}

// NewRunner creates a driver for level. mover may be nil.
func NewRunner(level *Level, mover Mover, opts ...RunnerOption) *Runner {
	r := &Runner{
		level:   level,
		mover:   mover,
		maxStep: DefaultMaxStep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Level returns the driven level.
func (r *Runner) Level() *Level { return r.level }

// Ticks returns how many Step calls have run.
func (r *Runner) Ticks() int { return r.ticks }

// Elapsed returns the simulated time, in seconds, spent while the level was
// running.
func (r *Runner) Elapsed() float64 { return r.elapsed }

// Step advances the simulation by dt seconds.
func (r *Runner) Step(dt float64) StepResult {
	r.ticks++
	var res StepResult
	decided := r.level.Status() != StatusRunning
	for dt > 0 {
		// The finish delay starts counting on the next Step.
		if !decided && r.level.Status() != StatusRunning {
			break
		}
		slice := dt
		if slice > r.maxStep {
			slice = r.maxStep
		}
		dt -= slice
		r.advance(slice, &res)
	}
	res.Status = r.level.Status()
	res.Finished = r.level.IsFinished()
	return res
}

func (r *Runner) advance(dt float64, res *StepResult) {
	l := r.level
	if l.Status() != StatusRunning {
		l.AdvanceFinish(dt)
		return
	}
	r.elapsed += dt

	if r.mover != nil && l.Player() != nil {
		r.mover.Move(dt, l)
	}
	for _, a := range l.Actors() {
		a.Act(dt, l)
	}
	r.resolve(res)
}

// resolve applies every overlapping actor first, then static contact, so a
// last coin taken on lava still wins.
func (r *Runner) resolve(res *StepResult) {
	l := r.level
	player := l.Player()
	if player == nil {
		return
	}
	hits, _ := l.ActorsAt(player)
	for _, hit := range hits {
		touch := hit.Kind().Touch()
		res.Touches = append(res.Touches, touch)
		before := l.CountActors(KindCoin)
		l.PlayerTouched(touch, hit)
		if l.CountActors(KindCoin) < before {
			res.Collected++
		}
	}
	if touch := l.ObstacleAt(player.Pos(), player.Size()).Touch(); touch != TouchNone {
		res.Touches = append(res.Touches, touch)
		l.PlayerTouched(touch, nil)
	}
}
