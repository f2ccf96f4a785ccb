package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show best times for a pack",
	Long: `Display the fastest clear of every level in a pack, plus pack
totals and the high score. Without an argument the --pack flag, or the
default pack, is used.

Examples:
  platformer scores
  platformer scores classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	packID := flagPack
	if len(args) > 0 {
		packID = args[0]
	}
	title := packID
	if packID == "" || flagLevels != "" {
		if pack, err := levels.Resolve(flagLevels, packID); err == nil {
			packID = pack.ID
			title = pack.Name
		}
	}
	if packID == "" {
		packID = levels.DefaultPack().ID
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	runs, err := store.BestRuns(packID)
	if err != nil {
		store.Close()
		fatalf("retrieving runs: %v", err)
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play --pack %s' to set the first time!\n", packID)
		return
	}

	fmt.Printf("  %-5s  %-24s  %-9s  %-5s  %s\n", "Level", "Name", "Time", "Coins", "Date")
	fmt.Printf("  %-5s  %-24s  %-9s  %-5s  %s\n", "-----", "----", "----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-24s  %-9s  %-5d  %s\n",
			r.LevelIndex+1, r.LevelName, tui.FormatDuration(r.Duration), r.Coins,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetPackStats(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Cleared: %d  Deaths: %d  Coins: %d\n", stats.Runs, stats.Wins, stats.Deaths, stats.Coins)
	fmt.Printf("Best: %d\n", stats.HighScore)
}
