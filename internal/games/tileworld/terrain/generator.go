package terrain

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/vovakirdan/sandpit/internal/config"
)

// Generator produces bases for one terrain configuration and keeps recently
// used ones in a bounded cache, so switching back to a seed is instant.
type Generator struct {
	terrain config.TileWorldTerrain
	trees   config.TileWorldTrees
	cache   *ristretto.Cache[uint32, *Base]
}

// NewGenerator creates a generator caching up to cfg.Cache.Worlds bases.
func NewGenerator(cfg config.TileWorldConfig) (*Generator, error) {
	worlds := int64(max(cfg.Cache.Worlds, 1))
	cache, err := ristretto.NewCache(&ristretto.Config[uint32, *Base]{
		NumCounters:        worlds * 10,
		MaxCost:            worlds,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: cannot create cache: %w", err)
	}
	return &Generator{
		terrain: cfg.World,
		trees:   cfg.Trees,
		cache:   cache,
	}, nil
}

// Base returns the base world for seed, generating it on a cache miss.
func (g *Generator) Base(seed uint32) *Base {
	if b, ok := g.cache.Get(seed); ok {
		return b
	}
	b := Generate(seed, g.terrain, g.trees)
	g.cache.Set(seed, b, 1)
	g.cache.Wait()
	return b
}

// Close releases the cache.
func (g *Generator) Close() {
	g.cache.Close()
}
