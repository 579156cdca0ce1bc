package sandbox

import (
	"fmt"
	"strings"
)

// Kind is the material occupying one cell.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Water
	Wall
	Bomb
	Fire
	Oil
	Gunpowder
)

// Tools lists the paintable kinds in hotkey order (1..7).
var Tools = []Kind{Sand, Water, Wall, Bomb, Fire, Oil, Gunpowder}

var kindNames = [...]string{
	Empty:     "empty",
	Sand:      "sand",
	Water:     "water",
	Wall:      "wall",
	Bomb:      "bomb",
	Fire:      "fire",
	Oil:       "oil",
	Gunpowder: "gunpowder",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind resolves a kind by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Empty, fmt.Errorf("sandbox: unknown material %q", name)
}

// ToolForSlot returns the tool bound to hotkey n (1-based).
func ToolForSlot(n int) (Kind, bool) {
	if n < 1 || n > len(Tools) {
		return Empty, false
	}
	return Tools[n-1], true
}

// Liquid reports whether k flows sideways.
func (k Kind) Liquid() bool {
	return k == Water || k == Oil
}

// BlocksPlayer reports whether the player collides with k.
// Liquids, fire and empty cells are passable.
func (k Kind) BlocksPlayer() bool {
	switch k {
	case Sand, Wall, Bomb, Gunpowder:
		return true
	}
	return false
}

// Fireproof reports whether fire cannot replace k.
func (k Kind) Fireproof() bool {
	return k == Wall || k == Bomb
}
