package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/sandpit/internal/config"
	"github.com/vovakirdan/sandpit/internal/games/tileworld"
	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sandpit.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScoresTopAndAll(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore("sandbox", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		name string
		all  bool
		rows int
	}{
		{"top", false, 10},
		{"all", true, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := printScores(&out, store, "sandbox", "Falling Sand", tc.all); err != nil {
				t.Fatalf("printScores() failed: %v", err)
			}
			lines := 0
			for _, l := range strings.Split(out.String(), "\n") {
				if strings.HasPrefix(l, "  ") && !strings.HasPrefix(l, "  Rank") && !strings.HasPrefix(l, "  ----") {
					lines++
				}
			}
			if lines != tc.rows {
				t.Errorf("printed %d score rows, expected %d", lines, tc.rows)
			}
			if !strings.Contains(out.String(), "Best: 120") {
				t.Error("missing best score")
			}
		})
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openTestStore(t)
	var out bytes.Buffer
	if err := printScores(&out, store, "tileworld", "Tile World", false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestWorldShowListReset(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultTileWorldConfig()
	edits := tileworld.NewEditStore(store, cfg.Storage.Namespace)

	seed := tileworld.SeedFor("isle", cfg.Storage.SeedText)
	base := terrain.Generate(seed, cfg.World, cfg.Trees)
	w := tileworld.NewWorld(base, nil)
	w.SetBlock(5, base.Height-1, terrain.Air)
	if err := edits.Save(seed, w.Edits); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	var out bytes.Buffer
	if err := showWorld(&out, cfg, edits, " isle ", 20); err != nil {
		t.Fatalf("showWorld() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Edits: 1") || !strings.Contains(out.String(), "air") {
		t.Errorf("show output = %q", out.String())
	}

	out.Reset()
	if err := listWorlds(&out, edits); err != nil {
		t.Fatalf("listWorlds() failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != edits.Key(seed) {
		t.Errorf("list output = %q, expected %q", out.String(), edits.Key(seed))
	}

	out.Reset()
	if err := resetWorld(&out, cfg, edits, "isle"); err != nil {
		t.Fatalf("resetWorld() failed: %v", err)
	}
	seeds, err := edits.Seeds()
	if err != nil {
		t.Fatalf("Seeds() failed: %v", err)
	}
	if len(seeds) != 0 {
		t.Errorf("seeds left after reset: %v", seeds)
	}
}

func TestWorldShowReportsCorruptEdits(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultTileWorldConfig()
	edits := tileworld.NewEditStore(store, cfg.Storage.Namespace)

	seed := tileworld.SeedFor("", cfg.Storage.SeedText)
	if err := store.Put(edits.Key(seed), []byte{0xc1}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	var out bytes.Buffer
	if err := showWorld(&out, cfg, edits, "", 20); err == nil {
		t.Error("expected an error for undecodable edits")
	}
}
