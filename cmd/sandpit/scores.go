package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandpit/internal/registry"
	"github.com/vovakirdan/sandpit/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show recorded session scores for a game",
	Long: `Display the top 10 session scores for the given game. The sandbox
scores detonations; the tile world scores blocks mined and placed.

Examples:
  sandpit scores sandbox
  sandpit scores sandbox --all
  sandpit scores tileworld --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score for the game")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		exitf("unknown game %q (run 'sandpit list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		exitf("cannot create game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("%v", err)
	}

	if flagScoresClear {
		err = clearScores(os.Stdout, store, gameID, game.Title())
	} else {
		err = printScores(os.Stdout, store, gameID, game.Title(), flagScoresAll)
	}
	store.Close()
	if err != nil {
		exitf("%v", err)
	}
}

func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared scores for %s.\n", title)
	return nil
}

// printScores writes the score table for gameID, the top 10 or all of them.
func printScores(w io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBest: %d\n", best)
	return nil
}
