// Package terrain generates the static base of a tile world from a seed:
// a column heightmap, a sea band and trees. Blocks are resolved lazily per
// coordinate; nothing here knows about player edits.
package terrain

import (
	"math"

	"github.com/vovakirdan/sandpit/internal/config"
)

// Base is a generated world. It is immutable after Generate returns and safe
// for concurrent reads.
type Base struct {
	Seed     uint32
	Width    int
	Height   int
	SeaLevel int

	dirtDepth int
	heights   []int
	deco      map[Point]Kind
}

// Generate builds the base world for seed.
func Generate(seed uint32, w config.TileWorldTerrain, t config.TileWorldTrees) *Base {
	b := &Base{
		Seed:      seed,
		Width:     w.Width,
		Height:    w.Height,
		SeaLevel:  w.SeaLevel,
		dirtDepth: w.DirtDepth,
		heights:   make([]int, w.Width),
		deco:      make(map[Point]Kind),
	}
	for x := range b.heights {
		v := w.BaseHeight
		for _, o := range w.Octaves {
			v += Noise1D(seed, float64(x), o.Period) * o.Amplitude
		}
		b.heights[x] = min(max(int(math.Floor(v+0.5)), w.MinHeight), w.MaxHeight)
	}
	b.plantTrees(t)
	return b
}

// plantTrees stamps trunks and crowns into the decoration layer. Columns at
// or below the shoreline never grow trees.
func (b *Base) plantTrees(t config.TileWorldTrees) {
	seed := b.Seed
	last := math.MinInt / 2
	for x := t.Margin; x < b.Width-t.Margin; x++ {
		top := b.heights[x]
		if top >= b.SeaLevel-1 || x-last < t.Gap {
			continue
		}
		if mulberry32(seed+uint32(x*17)) > t.Chance {
			continue
		}
		last = x

		trunk := t.TrunkMin + int(mulberry32(seed+uint32(x*31))*float64(t.TrunkVariance))
		for i := 1; i <= trunk; i++ {
			b.deco[Point{x, top - i}] = Wood
		}

		crownY := top - trunk
		r := t.CrownRadius
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				ax, ay := x+dx, crownY+dy
				if !b.In(ax, ay) {
					continue
				}
				chance := t.CrownEdgeChance
				if abs(dx)+abs(dy) <= r {
					chance = t.CrownCoreChance
				}
				if mulberry32(seed+uint32(ax*131+ay*17)) >= chance {
					continue
				}
				p := Point{ax, ay}
				if b.deco[p] != Wood {
					b.deco[p] = Leaves
				}
			}
		}
	}
}

// In reports whether (x, y) lies inside the world.
func (b *Base) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// SurfaceHeight returns the row of the top soil block in column x, or -1
// outside the world.
func (b *Base) SurfaceHeight(x int) int {
	if x < 0 || x >= b.Width {
		return -1
	}
	return b.heights[x]
}

// Block returns the generated tile at (x, y). Everything outside the world is
// stone.
func (b *Base) Block(x, y int) Kind {
	if !b.In(x, y) {
		return Stone
	}
	if k, ok := b.deco[Point{x, y}]; ok {
		return k
	}
	top := b.heights[x]
	switch {
	case y < top:
		if y >= b.SeaLevel {
			return Water
		}
		return Air
	case y == top:
		return Grass
	case y <= top+b.dirtDepth:
		return Dirt
	default:
		return Stone
	}
}

// Decorations returns the number of tree tiles of kind k.
func (b *Base) Decorations(k Kind) int {
	n := 0
	for _, v := range b.deco {
		if v == k {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
