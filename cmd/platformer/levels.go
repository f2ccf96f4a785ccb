package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level packs and their levels",
	Long: `Shows the builtin level packs, or the packs found under --levels.

Examples:
  platformer levels
  platformer levels --levels ./packs`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	var (
		packs []levels.Pack
		err   error
	)
	if flagLevels != "" {
		packs, err = levels.NewLoader(flagLevels).LoadAll()
	} else {
		packs, err = levels.Builtin()
	}
	if err != nil {
		fatalf("%v", err)
	}

	if len(packs) == 0 {
		fmt.Println("No level packs found.")
		return
	}

	for _, p := range packs {
		fmt.Printf("%s (%s)\n", p.Name, p.ID)
		if p.FilePath != "" {
			fmt.Printf("  %s\n", p.FilePath)
		}
		for i, l := range p.Levels {
			w, h := planSize(l.Plan)
			fmt.Printf("  %2d. %-24s %dx%d\n", i+1, l.Name, w, h)
		}
		fmt.Println()
	}

	fmt.Println("Run 'platformer play --pack <id>' to play a pack.")
}

// planSize returns the widest row and the row count of a plan.
func planSize(plan []string) (int, int) {
	w := 0
	for _, row := range plan {
		w = max(w, len([]rune(row)))
	}
	return w, len(plan)
}
