package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandpit/internal/config"
	"github.com/vovakirdan/sandpit/internal/games/tileworld"
	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/storage"
)

var flagWorldLimit int

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Inspect or clear stored tile world edits",
	Long: `Tile world edits are stored per seed under "<namespace>:<seed>".
The seed is the hash of --seed-text; an empty text means the default world.

Examples:
  sandpit world list
  sandpit world show --seed-text island
  sandpit world reset --seed-text island`,
}

var worldShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the edits stored for a seed text",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withWorld(func(cfg config.TileWorldConfig, edits *tileworld.EditStore) error {
			return showWorld(os.Stdout, cfg, edits, flagSeedText, flagWorldLimit)
		})
	},
}

var worldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List seeds with stored edits",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withWorld(func(_ config.TileWorldConfig, edits *tileworld.EditStore) error {
			return listWorlds(os.Stdout, edits)
		})
	},
}

var worldResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the edits stored for a seed text",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withWorld(func(cfg config.TileWorldConfig, edits *tileworld.EditStore) error {
			return resetWorld(os.Stdout, cfg, edits, flagSeedText)
		})
	},
}

func init() {
	worldShowCmd.Flags().IntVar(&flagWorldLimit, "limit", 20, "Edits to print (0 = all)")
	worldCmd.AddCommand(worldShowCmd, worldListCmd, worldResetCmd)
}

// withWorld opens the tile world config and the edit store, runs fn and
// closes the store before reporting fn's error.
func withWorld(fn func(config.TileWorldConfig, *tileworld.EditStore) error) {
	cfg, err := config.LoadTileWorld(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("%v", err)
	}

	err = fn(cfg, tileworld.NewEditStore(store, cfg.Storage.Namespace))
	store.Close()
	if err != nil {
		exitf("%v", err)
	}
}

func showWorld(w io.Writer, cfg config.TileWorldConfig, edits *tileworld.EditStore, seedText string, limit int) error {
	seed := tileworld.SeedFor(seedText, cfg.Storage.SeedText)
	base := terrain.Generate(seed, cfg.World, cfg.Trees)
	overlay, err := edits.Load(base)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Seed:  %d\n", seed)
	fmt.Fprintf(w, "Key:   %s\n", edits.Key(seed))
	fmt.Fprintf(w, "Size:  %dx%d tiles, sea level %d\n", base.Width, base.Height, base.SeaLevel)
	fmt.Fprintf(w, "Edits: %d\n", overlay.Len())
	if overlay.Len() == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-5s  %-5s  %-7s  %s\n", "X", "Y", "Block", "Was")
	fmt.Fprintf(w, "  %-5s  %-5s  %-7s  %s\n", "-", "-", "-----", "---")
	for i, p := range overlay.Points() {
		if limit > 0 && i >= limit {
			fmt.Fprintf(w, "  ... %d more\n", overlay.Len()-i)
			break
		}
		k, _ := overlay.Get(p)
		fmt.Fprintf(w, "  %-5d  %-5d  %-7s  %s\n", p.X, p.Y, k, base.Block(p.X, p.Y))
	}
	return nil
}

func listWorlds(w io.Writer, edits *tileworld.EditStore) error {
	seeds, err := edits.Seeds()
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		fmt.Fprintln(w, "No stored edits.")
		return nil
	}
	for _, seed := range seeds {
		fmt.Fprintln(w, edits.Key(seed))
	}
	return nil
}

func resetWorld(w io.Writer, cfg config.TileWorldConfig, edits *tileworld.EditStore, seedText string) error {
	seed := tileworld.SeedFor(seedText, cfg.Storage.SeedText)
	if err := edits.Remove(seed); err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed edits for %s.\n", edits.Key(seed))
	return nil
}
