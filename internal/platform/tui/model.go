package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// packReplacer is implemented by games that accept a reloaded level pack.
type packReplacer interface {
	Pack() levels.Pack
	ReplacePack(pack levels.Pack)
}

// recordErrTaker is implemented by games that persist runs in the background.
type recordErrTaker interface {
	TakeRecordErr() error
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger logs reloads and storage failures.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) { m.logger = logger }
}

// WithWatcher reloads the game's pack when its file changes.
func WithWatcher(w *levels.Watcher) ModelOption {
	return func(m *Model) { m.watcher = w }
}

// WithPalette renders with p instead of the default palette.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) { m.palette = p }
}

// WithBackToMenu makes B/Esc leave the game when it is over or paused,
// instead of being ignored.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.canGoBack = true }
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *levels.Watcher
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	palette    Palette
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // Transient message shown in the bottom row
	canGoBack  bool
	backToMenu bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		palette:    defaultPalette,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), m.watch())
}

func (m Model) watch() tea.Cmd {
	r, ok := m.game.(packReplacer)
	if !ok || m.watcher == nil {
		return nil
	}
	return watchCmd(m.watcher, r.Pack().ID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case PackReloadedMsg:
		if r, ok := m.game.(packReplacer); ok {
			r.ReplacePack(msg.Pack)
			m.gameState = m.game.State()
			m.scoreSaved = false
			m.status = "Reloaded " + msg.Pack.Name
			m.logf(log.InfoLevel, "pack reloaded", "pack", msg.Pack.ID, "levels", msg.Pack.Count())
		}
		return m, m.watch()

	case PackReloadErrMsg:
		m.status = fmt.Sprintf("Reload failed: %v", msg.Err)
		m.logf(log.WarnLevel, "pack reload failed", "path", msg.Path, "error", msg.Err)
		return m, m.watch()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.canGoBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.scoreSaved = false
		m.status = ""
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if t, ok := m.game.(recordErrTaker); ok {
		if err := t.TakeRecordErr(); err != nil {
			m.logf(log.WarnLevel, "could not record run", "error", err)
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.packID(), m.gameState.Score); err != nil {
				m.logf(log.WarnLevel, "could not save score", "error", err)
			}
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// packID returns the storage key for scores: the pack ID when the game
// plays a pack, the game ID otherwise.
func (m Model) packID() string {
	if r, ok := m.game.(packReplacer); ok {
		return r.Pack().ID
	}
	return m.game.ID()
}

func (m Model) logf(level log.Level, msg string, keyvals ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Log(level, msg, keyvals...)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.packID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err == nil {
		m.status = "Saved " + path
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		y := m.screen.Height() - 1
		m.screen.DrawHLine(0, y, m.screen.Width(), ' ', core.ColorDefault)
		m.screen.DrawTextColored(0, y, m.status, core.ColorGray)
	}
	return m.palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	_, err := RunModel(game, store, cfg, opts...)
	return err
}

// RunModel runs the game like Run and returns the final model so callers
// can tell quitting from going back to a menu.
func RunModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts...),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Model{quitting: true}, nil
	}
	return m, nil
}
