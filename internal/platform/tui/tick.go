// Package tui provides the Bubble Tea front end for the platformer: the game
// loop, level picker, scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// PackReloadedMsg carries a pack re-read after its file changed.
type PackReloadedMsg struct {
	Pack levels.Pack
}

// PackReloadErrMsg reports a changed pack file that failed to load.
type PackReloadErrMsg struct {
	Path string
	Err  error
}

// watchCmd waits for the next change under the watcher and reloads the
// pack with the given ID from that file. It returns nil once the watcher
// is closed.
func watchCmd(w *levels.Watcher, packID string) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return nil
				}
				pack, err := levels.NewLoader(path).LoadFile(path)
				if err != nil {
					return PackReloadErrMsg{Path: path, Err: err}
				}
				if pack.ID != packID {
					continue
				}
				if errs := levels.ValidatePack(pack); len(errs) > 0 {
					return PackReloadErrMsg{Path: path, Err: errs[0]}
				}
				return PackReloadedMsg{Pack: pack}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return PackReloadErrMsg{Err: err}
			}
		}
	}
}
