package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sandpit/internal/platform/tui"
	"github.com/vovakirdan/sandpit/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start the given game in the terminal. Each character cell shows two
pixels; the mouse paints, mines and places.

Controls:
  Arrows/WASD  - Move, Up/W/Space jumps or swims
  Mouse        - Left paints or mines, right erases or places
  1-7          - Select tool or block
  [ ] / wheel  - Brush size
  Enter / X    - Start / stop
  P            - Pause
  C            - Clear the sandbox
  Backspace    - Drop tile world edits for this seed
  Ctrl+S       - Save a screenshot
  Esc/Q        - Quit

Examples:
  sandpit play sandbox
  sandpit play sandbox --tool gunpowder --brush 6 --seed 42
  sandpit play tileworld --seed-text island`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		exitf("unknown game %q (run 'sandpit list')", gameID)
	}
	configureGames(gameID)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := tui.TerminalConfig(runtimeConfig(width, height))

	store := openStore()
	game, err := registry.Prepare(gameID, cfg, tui.StoreKV(store), logger)
	if err != nil {
		exitf("cannot create game: %v", err)
	}

	runErr := tui.Run(game, store, logger, cfg)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
