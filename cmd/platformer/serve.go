package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeConfig     string
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the platformer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker.
Runs and scores are stored per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.platformer/host_key

Examples:
  platformer serve                           # Listen on :23234 with auto-generated key
  platformer serve --ssh :2222               # Listen on port 2222
  platformer serve --levels ./packs --pack x # Serve a custom pack
  platformer serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	pack, err := levels.Resolve(flagLevels, flagPack)
	if err != nil {
		fatalf("%v", err)
	}

	gameCfg, err := gameConfig(flagServeConfig, flagServeDifficulty)
	if err != nil {
		fatalf("%v", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.Pack = pack
	cfg.Game = gameCfg
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Serving %q on %s\n", pack.Name, cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
