package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sandpit/internal/platform/tui"
	"github.com/vovakirdan/sandpit/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start in interactive menu mode. Leaving a game with Esc returns to
the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scores
  Q            - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := runtimeConfig(width, height)

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}
		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		configureGames(result.GameID)
		gameCfg := tui.TerminalConfig(cfg)
		game, err := registry.Prepare(result.GameID, gameCfg, tui.StoreKV(store), logger)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "err", err)
			continue
		}
		if err := tui.Run(game, store, logger, gameCfg); err != nil {
			logger.Error("running game", "game", result.GameID, "err", err)
		}
	}
}
