package tileworld

import (
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
)

// overlayVersion tags the encoded edit list.
const overlayVersion = 1

// Overlay is the sparse set of tiles the player changed. An entry never
// equals the generated tile underneath it.
type Overlay struct {
	edits map[terrain.Point]terrain.Kind
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{edits: make(map[terrain.Point]terrain.Kind)}
}

// Get returns the edit at p, if any.
func (o *Overlay) Get(p terrain.Point) (terrain.Kind, bool) {
	k, ok := o.edits[p]
	return k, ok
}

// Set records k at p, or drops the entry when k matches base.
func (o *Overlay) Set(p terrain.Point, k, base terrain.Kind) {
	if k == base {
		delete(o.edits, p)
		return
	}
	o.edits[p] = k
}

// Len returns the number of edits.
func (o *Overlay) Len() int {
	return len(o.edits)
}

// Clear drops every edit.
func (o *Overlay) Clear() {
	clear(o.edits)
}

// Points returns the edited coordinates in row-major order.
func (o *Overlay) Points() []terrain.Point {
	pts := make([]terrain.Point, 0, len(o.edits))
	for p := range o.edits {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

type overlayFile struct {
	Version int          `msgpack:"v"`
	Edits   []editRecord `msgpack:"edits"`
}

type editRecord struct {
	X    int          `msgpack:"x"`
	Y    int          `msgpack:"y"`
	Kind terrain.Kind `msgpack:"k"`
}

// Encode serializes the overlay. Edits are written in row-major order so the
// same overlay always encodes to the same bytes.
func (o *Overlay) Encode() ([]byte, error) {
	f := overlayFile{Version: overlayVersion}
	for _, p := range o.Points() {
		f.Edits = append(f.Edits, editRecord{X: p.X, Y: p.Y, Kind: o.edits[p]})
	}
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("tileworld: cannot encode edits: %w", err)
	}
	return data, nil
}

// DecodeOverlay parses an encoded overlay against base. Records outside the
// world or matching the base are dropped; an unknown version or kind fails
// the whole decode.
func DecodeOverlay(data []byte, base *terrain.Base) (*Overlay, error) {
	var f overlayFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("tileworld: cannot decode edits: %w", err)
	}
	if f.Version != overlayVersion {
		return nil, fmt.Errorf("tileworld: unsupported edits version %d", f.Version)
	}
	o := NewOverlay()
	for _, e := range f.Edits {
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("tileworld: invalid block kind %d at %d,%d", e.Kind, e.X, e.Y)
		}
		if !base.In(e.X, e.Y) {
			continue
		}
		o.Set(terrain.Point{X: e.X, Y: e.Y}, e.Kind, base.Block(e.X, e.Y))
	}
	return o, nil
}
