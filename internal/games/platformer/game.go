// Package platformer implements the tile-based platformer campaign: a pack
// of levels played in order with a limited number of lives. The simulation
// itself lives in the sim subpackage; this package adds keyboard control,
// lives, scoring, run recording and rendering.
package platformer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// ID identifies the game in storage and on the command line.
const ID = "platformer"

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.PlatformerConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithRecorder records every finished level attempt.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithStartLevel starts the campaign at a zero-based level index,
// overriding the configured start level.
func WithStartLevel(index int) Option {
	return func(g *Game) { g.startLevel = &index }
}

// Game implements the platformer campaign.
type Game struct {
	pack       levels.Pack
	cfg        config.PlatformerConfig
	recorder   RunRecorder
	startLevel *int

	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	parser     *sim.Parser
	controller *Controller
	runner     *sim.Runner

	levelIndex int
	levelCoins int // Coins collected in the current attempt
	levelTicks int
	score      int
	lives      int
	tick       uint64

	paused   bool
	won      bool
	gameOver bool

	loadErr   error // Level plan failed to parse or the player hit a bad move
	recordErr error // Last recorder failure
}

// New creates a game for the given pack.
func New(pack levels.Pack, opts ...Option) *Game {
	g := &Game{
		pack: pack,
		cfg:  config.DefaultPlatformerConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer: " + g.pack.Name
}

// Reset starts the campaign over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.parser = sim.NewParser(sim.DefaultDictionary(rand.New(rand.NewSource(seed))))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.controller = NewController(g.cfg.Physics, g.cfg.Controls)

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.paused = false
	g.won = false
	g.gameOver = false
	g.recordErr = nil

	start := g.cfg.Gameplay.StartLevel
	if g.startLevel != nil {
		start = *g.startLevel
	}
	if g.pack.Count() > 0 {
		start = core.Clamp(start, 0, g.pack.Count()-1)
	}
	g.loadLevel(start)
}

// loadLevel parses the level at index and starts a fresh attempt.
func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.levelCoins = 0
	g.levelTicks = 0
	g.controller.Reset()

	level, err := g.parser.Parse(g.pack.Level(index).Plan)
	if err != nil {
		g.loadErr = fmt.Errorf("level %d: %w", index+1, err)
		g.runner = nil
		g.gameOver = true
		return
	}
	g.loadErr = nil
	g.runner = sim.NewRunner(level, g.controller, sim.WithMaxStep(g.cfg.Physics.MaxStep))
}

// ReplacePack swaps in a reloaded pack and restarts the current level.
// Lives are kept; coins from the interrupted attempt are dropped.
func (g *Game) ReplacePack(pack levels.Pack) {
	g.pack = pack
	if g.parser == nil {
		return
	}
	g.score -= g.levelCoins
	g.won = false
	g.gameOver = false
	index := g.levelIndex
	if index >= pack.Count() {
		index = max(0, pack.Count()-1)
	}
	g.loadLevel(index)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver || g.runner == nil {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.levelTicks++

	g.controller.Press(in)
	dt := g.runtime.Dt() * g.difficulty.TimeScale(g.levelIndex)
	res := g.runner.Step(dt)
	g.controller.EndTick()

	if err := g.controller.Err(); err != nil {
		g.loadErr = fmt.Errorf("level %d: %w", g.levelIndex+1, err)
		g.runner = nil
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if res.Collected > 0 {
		g.score += res.Collected
		g.levelCoins += res.Collected
		events = append(events, core.EventCoin)
	}

	if res.Finished {
		events = append(events, g.finishLevel(res.Status)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// finishLevel records the attempt, then advances or retries.
func (g *Game) finishLevel(status sim.Status) []core.Event {
	g.record(status)

	if status == sim.StatusWon {
		if g.levelIndex+1 >= g.pack.Count() {
			g.won = true
			g.gameOver = true
			return []core.Event{core.EventLevelCleared, core.EventPackCleared}
		}
		g.loadLevel(g.levelIndex + 1)
		return []core.Event{core.EventLevelCleared}
	}

	g.lives--
	g.score -= g.levelCoins
	if g.lives <= 0 {
		g.gameOver = true
		return []core.Event{core.EventDied, core.EventGameOver}
	}
	g.loadLevel(g.levelIndex)
	return []core.Event{core.EventDied}
}

func (g *Game) record(status sim.Status) {
	if g.recorder == nil {
		return
	}
	err := g.recorder.RecordRun(RunRecord{
		PackID:     g.pack.ID,
		LevelIndex: g.levelIndex,
		LevelName:  g.pack.Level(g.levelIndex).Name,
		Status:     status,
		Coins:      g.levelCoins,
		Ticks:      g.levelTicks,
		Duration:   time.Duration(g.runner.Elapsed() * float64(time.Second)),
	})
	if err != nil {
		g.recordErr = err
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		LevelName:  g.pack.Level(g.levelIndex).Name,
		Won:        g.won,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// Level returns the level being played, or nil if it failed to load.
func (g *Game) Level() *sim.Level {
	if g.runner == nil {
		return nil
	}
	return g.runner.Level()
}

// Pack returns the pack being played.
func (g *Game) Pack() levels.Pack {
	return g.pack
}

// Err returns the level or movement error that ended the game, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// TakeRecordErr returns and clears the last recorder failure.
func (g *Game) TakeRecordErr() error {
	err := g.recordErr
	g.recordErr = nil
	return err
}
