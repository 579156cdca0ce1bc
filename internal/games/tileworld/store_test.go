package tileworld

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/storage"
)

func TestEditStoreWithSQLite(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "sandpit.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	es := NewEditStore(db, "mc-lite")
	base := matthieuBase()

	o, err := es.Load(base)
	if err != nil {
		t.Fatalf("Load() on empty store failed: %v", err)
	}
	if o.Len() != 0 {
		t.Fatalf("fresh overlay has %d edits", o.Len())
	}

	w := NewWorld(base, o)
	w.SetBlock(0, 57, terrain.Air)
	w.SetBlock(4, 55, terrain.Stone)
	if err := es.Save(base.Seed, w.Edits); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := es.Load(base)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Points(), w.Edits.Points()) {
		t.Errorf("loaded %v, expected %v", loaded.Points(), w.Edits.Points())
	}

	seeds, err := es.Seeds()
	if err != nil {
		t.Fatalf("Seeds() failed: %v", err)
	}
	if !reflect.DeepEqual(seeds, []uint32{base.Seed}) {
		t.Errorf("Seeds() = %v, expected [%d]", seeds, base.Seed)
	}

	w.Edits.Clear()
	if err := es.Save(base.Seed, w.Edits); err != nil {
		t.Fatalf("Save() of empty overlay failed: %v", err)
	}
	if _, err := db.Get(es.Key(base.Seed)); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("empty overlay should remove the key, Get() = %v", err)
	}
}

func TestEditStoreKeys(t *testing.T) {
	kv := storage.NewMemoryKV()
	es := NewEditStore(kv, "mc-lite")
	if got := es.Key(1518007886); got != "mc-lite:1518007886" {
		t.Errorf("Key() = %q", got)
	}

	kv.Put("mc-lite:12", []byte{0x80})
	kv.Put("mc-lite:not-a-seed", []byte{0x80})
	kv.Put("other:34", []byte{0x80})

	seeds, err := es.Seeds()
	if err != nil {
		t.Fatalf("Seeds() failed: %v", err)
	}
	if !reflect.DeepEqual(seeds, []uint32{12}) {
		t.Errorf("Seeds() = %v, expected [12]", seeds)
	}
}
