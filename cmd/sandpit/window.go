package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandpit/internal/platform/gui"
	"github.com/vovakirdan/sandpit/internal/platform/tui"
	"github.com/vovakirdan/sandpit/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a native window",
	Long: `Open the given game in a native window. Requires a build with the
ebiten tag:

  go build -tags ebiten ./cmd/sandpit

Examples:
  sandpit window sandbox
  sandpit window tileworld --width 1280 --height 720`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = game default)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = game default)")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		exitf("unknown game %q (run 'sandpit list')", gameID)
	}
	configureGames(gameID)

	probe, err := registry.Create(gameID)
	if err != nil {
		exitf("cannot create game: %v", err)
	}
	cfg := gui.WindowConfig(probe, runtimeConfig(flagWidth, flagHeight))

	store := openStore()
	game, err := registry.Prepare(gameID, cfg, tui.StoreKV(store), logger)
	if err != nil {
		exitf("cannot create game: %v", err)
	}

	runErr := gui.Run(game, store, logger, cfg)
	if store != nil {
		store.Close()
	}
	if errors.Is(runErr, gui.ErrUnavailable) {
		exitf("%v; rebuild with -tags ebiten or use 'sandpit play'", runErr)
	}
	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
