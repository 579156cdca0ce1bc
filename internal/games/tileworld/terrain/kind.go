package terrain

import "fmt"

// Kind is the content of one tile.
type Kind uint8

const (
	Air Kind = iota
	Grass
	Dirt
	Stone
	Water
	Wood
	Leaves
)

var kindNames = [...]string{
	Air:    "air",
	Grass:  "grass",
	Dirt:   "dirt",
	Stone:  "stone",
	Water:  "water",
	Wood:   "wood",
	Leaves: "leaves",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Solid reports whether the tile blocks movement. Air and water do not.
func (k Kind) Solid() bool {
	return k != Air && k != Water
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}
