package tileworld

import "github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"

// World is a generated base with the player's edits layered on top.
type World struct {
	Base  *terrain.Base
	Edits *Overlay
}

// NewWorld wraps base with edits. A nil overlay starts empty.
func NewWorld(base *terrain.Base, edits *Overlay) *World {
	if edits == nil {
		edits = NewOverlay()
	}
	return &World{Base: base, Edits: edits}
}

// Width returns the world width in tiles.
func (w *World) Width() int { return w.Base.Width }

// Height returns the world height in tiles.
func (w *World) Height() int { return w.Base.Height }

// Block returns the effective tile at (x, y): the edit if there is one,
// else the generated tile.
func (w *World) Block(x, y int) terrain.Kind {
	if k, ok := w.Edits.Get(terrain.Point{X: x, Y: y}); ok {
		return k
	}
	return w.Base.Block(x, y)
}

// SetBlock records k at (x, y). Coordinates outside the world are ignored.
// It reports whether the effective tile changed.
func (w *World) SetBlock(x, y int, k terrain.Kind) bool {
	if !w.Base.In(x, y) || w.Block(x, y) == k {
		return false
	}
	w.Edits.Set(terrain.Point{X: x, Y: y}, k, w.Base.Block(x, y))
	return true
}

// Solid reports whether the tile at (cx, cy) blocks movement.
func (w *World) Solid(cx, cy int) bool {
	return w.Block(cx, cy).Solid()
}
