package tileworld

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/storage"
)

// EditStore persists overlays in a KV under "<namespace>:<seed>".
type EditStore struct {
	kv        storage.KV
	namespace string
}

// NewEditStore binds a KV and a key namespace.
func NewEditStore(kv storage.KV, namespace string) *EditStore {
	return &EditStore{kv: kv, namespace: namespace}
}

// Key returns the storage key for seed.
func (e *EditStore) Key(seed uint32) string {
	return fmt.Sprintf("%s:%d", e.namespace, seed)
}

// Load reads the overlay for base. A missing key yields an empty overlay.
func (e *EditStore) Load(base *terrain.Base) (*Overlay, error) {
	data, err := e.kv.Get(e.Key(base.Seed))
	if errors.Is(err, storage.ErrNotFound) {
		return NewOverlay(), nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeOverlay(data, base)
}

// Save writes o for seed. An empty overlay removes the key.
func (e *EditStore) Save(seed uint32, o *Overlay) error {
	if o.Len() == 0 {
		return e.Remove(seed)
	}
	data, err := o.Encode()
	if err != nil {
		return err
	}
	return e.kv.Put(e.Key(seed), data)
}

// Remove deletes the overlay stored for seed.
func (e *EditStore) Remove(seed uint32) error {
	return e.kv.Delete(e.Key(seed))
}

// Seeds lists the seeds that have stored overlays.
func (e *EditStore) Seeds() ([]uint32, error) {
	keys, err := e.kv.Keys(e.namespace + ":")
	if err != nil {
		return nil, err
	}
	seeds := make([]uint32, 0, len(keys))
	for _, k := range keys {
		seed, err := strconv.ParseUint(k[len(e.namespace)+1:], 10, 32)
		if err != nil {
			continue
		}
		seeds = append(seeds, uint32(seed))
	}
	return seeds, nil
}
