package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a level and play",
	Long: `Open the level picker for a pack, or jump straight into a level
with --level. Clearing a level moves on to the next one; after the game
ends you return to the picker.

Controls:
  A/D or Left/Right  - Run
  Space/W/Up         - Jump
  P                  - Pause
  B/Esc              - Back to the picker (paused or game over)
  R                  - Restart (after game over)
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - 5 lives, starts slow and speeds up through the pack
  normal - Starts at 30% speed-up
  hard   - 2 lives, starts at 70% speed-up
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play --level 2
  platformer play --difficulty hard
  platformer play --levels ./my-pack.yaml --watch
  platformer play --config ./platformer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (1-based), skipping the picker")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the pack when its file changes (needs --levels)")
}

func runPlay(_ *cobra.Command, _ []string) {
	pack, err := levels.Resolve(flagLevels, flagPack)
	if err != nil {
		fatalf("%v", err)
	}
	if pack.Count() == 0 {
		fatalf("pack %q has no levels", pack.ID)
	}

	gameCfg, err := gameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fatalf("%v", err)
	}

	var opts []tui.ModelOption
	opts = append(opts, tui.WithLogger(logger), tui.WithBackToMenu())
	if flagWatch {
		w := startWatcher()
		if w != nil {
			defer w.Close()
			opts = append(opts, tui.WithWatcher(w))
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	if flagLevel > 0 {
		game := newGame(pack, gameCfg, store, flagLevel-1)
		if err := tui.Run(game, store, cfg, opts...); err != nil {
			fatalf("running game: %v", err)
		}
		return
	}

	for {
		menuResult, err := tui.RunMenu(pack, store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, knownPacks(pack), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game := newGame(pack, gameCfg, store, menuResult.LevelIndex)
		m, err := tui.RunModel(game, store, cfg, opts...)
		if err != nil {
			logger.Error("game failed", "error", err)
			return
		}
		if m.IsQuitting() {
			return
		}
		// Pick up edits made while playing
		pack = game.Pack()
	}
}

// newGame creates a game that records runs when storage is available.
func newGame(pack levels.Pack, cfg config.PlatformerConfig, store *storage.Store, start int) *platformer.Game {
	opts := []platformer.Option{
		platformer.WithConfig(cfg),
		platformer.WithStartLevel(start),
	}
	if store != nil {
		opts = append(opts, platformer.WithRecorder(store))
	}
	return platformer.New(pack, opts...)
}

// startWatcher watches the --levels path. It returns nil when there is
// nothing to watch.
func startWatcher() *levels.Watcher {
	if flagLevels == "" {
		logger.Warn("--watch needs --levels; the builtin packs cannot change")
		return nil
	}

	dir := flagLevels
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	w, err := levels.NewWatcher(dir)
	if err != nil {
		logger.Warn("could not watch levels", "path", dir, "error", err)
		return nil
	}
	logger.Info("watching levels", "path", dir)
	return w
}

// knownPacks lists the playing pack and the builtin packs for the scoreboard.
func knownPacks(current levels.Pack) []levels.Pack {
	packs := []levels.Pack{current}
	builtin, err := levels.Builtin()
	if err != nil {
		return packs
	}
	return append(packs, builtin...)
}
