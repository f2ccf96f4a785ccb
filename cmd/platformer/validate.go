package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Check level pack files",
	Long: `Parse every level of every pack file and report problems: unreadable
YAML, empty plans, levels without a player or without coins.
Directories are searched for .yaml and .yml files.

Exits with status 1 when any file has problems.

Examples:
  platformer validate ./packs
  platformer validate easy.yaml hard.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	var paths []string
	for _, arg := range args {
		files, err := levels.NewLoader(arg).Files()
		if err != nil {
			fatalf("%v", err)
		}
		paths = append(paths, files...)
	}
	if len(paths) == 0 {
		fatalf("no level pack files found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := levels.ValidateFiles(ctx, paths)
	if err != nil {
		fatalf("%v", err)
	}

	failed := 0
	for _, r := range reports {
		if r.OK() {
			fmt.Printf("ok    %s (%s, %d levels)\n", r.Path, r.PackID, r.Levels)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", r.Path)
		for _, e := range r.Errors {
			fmt.Printf("      %v\n", e)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d files have problems\n", failed, len(reports))
		os.Exit(1)
	}
}
