package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Index int
	Name  string
	Best  time.Duration // Fastest won run, zero if never cleared
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	pack           levels.Pack
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a level picker for pack. The store is optional and
// only used to show best times.
func NewMenuModel(pack levels.Pack, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := make(map[int]time.Duration)
	if store != nil {
		if runs, err := store.BestRuns(pack.ID); err == nil {
			for _, r := range runs {
				best[r.LevelIndex] = r.Duration
			}
		}
	}

	items := make([]MenuItem, 0, pack.Count())
	for i, l := range pack.Levels {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		items = append(items, MenuItem{Index: i, Name: name, Best: best[i]})
	}

	return MenuModel{
		pack:      pack,
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  P L A T F O R M E R  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.pack.Name, m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("This pack has no levels", m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := "--"
		if item.Best > 0 {
			best = FormatDuration(item.Best)
		}

		line := fmt.Sprintf("%s%2d. %-24s %8s", cursor, item.Index+1, item.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// FormatDuration renders a run time as m:ss.cc.
func FormatDuration(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelIndex      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		res.Quit = true
	default:
		res.LevelIndex = m.Selected().Index
	}
	return res
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(pack levels.Pack, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(pack, store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
