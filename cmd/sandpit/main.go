// sandpit runs pixel simulations in the terminal, over SSH, or in a window.
//
// Usage:
//
//	sandpit list                 - List available games
//	sandpit play <game>          - Play a game in the terminal
//	sandpit window <game>        - Play a game in a native window
//	sandpit menu                 - Pick games interactively
//	sandpit serve                - Start SSH server for remote play
//	sandpit scores <game>        - Show recorded session scores
//	sandpit world show|list|reset - Inspect stored tile world edits
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible sandbox runs
//	--seed-text <text>   - Tile world seed text
//	--db <path>          - Set database path (default: ~/.sandpit/sandpit.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/games/sandbox"
	"github.com/vovakirdan/sandpit/internal/games/tileworld"
	"github.com/vovakirdan/sandpit/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagSeedText string
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
	flagTool     string
	flagBrush    int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "sandpit",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandpit",
	Short: "Sandpit - falling sand and a tile world in your terminal",
	Long: `Sandpit hosts two pixel simulations: a falling-sand sandbox with
water, oil, fire and explosives, and a side-on tile world you can walk,
swim, mine and build in. Tile world edits are stored per seed.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a native window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View recorded session scores
  world    - Inspect or clear stored tile world edits

Examples:
  sandpit play sandbox --tool water --brush 5
  sandpit play tileworld --seed-text island
  sandpit world show --seed-text island
  sandpit serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagSeedText, "seed-text", "", "Tile world seed text (empty = default world)")
	pf.StringVar(&flagDBPath, "db", "~/.sandpit/sandpit.db", "Path to the database")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagTool, "tool", "", "Sandbox start tool (sand, water, wall, bomb, fire, oil, gunpowder)")
	pf.IntVar(&flagBrush, "brush", 0, "Sandbox start brush radius (0 = config default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(worldCmd)
}

// configureGames applies the game flags before a game is created.
func configureGames(gameID string) {
	switch gameID {
	case "sandbox":
		sandbox.SetConfigPath(flagConfig)
		sandbox.SetStartTool(flagTool)
		sandbox.SetStartBrush(flagBrush)
	case "tileworld":
		tileworld.SetConfigPath(flagConfig)
	}
}

// runtimeConfig builds the config shared by every host. The size is filled
// in by the host.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
		SeedText: flagSeedText,
	}
}

// openStore opens the database, or returns nil with a warning so games still
// run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, nothing will be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
