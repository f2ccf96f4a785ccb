// platformer is a terminal platformer: collect every coin in a level,
// avoid lava and fireballs, and clear the pack.
//
// Usage:
//
//	platformer play              - Pick a level and play
//	platformer levels            - List level packs and their levels
//	platformer validate <path>   - Check level pack files
//	platformer scores [pack]     - Show best times for a pack
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.platformer/scores.db)
//	--pack <id>       - Pick a pack by ID
//	--levels <path>   - Load packs from a YAML file or directory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagPack   string
	flagLevels string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - Jump through level packs in your terminal",
	Long: `Platformer is a terminal game: run and jump through each level,
collect every coin, and stay clear of lava and fireballs.

Available commands:
  play      - Pick a level and play
  levels    - List level packs
  validate  - Check level pack files
  scores    - View best times
  serve     - Start SSH server for remote play

Examples:
  platformer play
  platformer play --level 3 --difficulty hard
  platformer play --levels ./packs --watch
  platformer validate ./packs
  platformer serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Level pack ID (default: classic)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a level pack file or directory")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig builds a runtime config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure is logged and the game
// continues without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// gameConfig loads the platformer config and applies a difficulty preset.
func gameConfig(path, difficulty string) (config.PlatformerConfig, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.PlatformerConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", difficulty)
	}

	cfg, err := config.LoadPlatformer(path)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	if difficulty != "" {
		config.ApplyPlatformerPreset(&cfg, preset)
	}
	return cfg, nil
}
