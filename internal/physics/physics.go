// Package physics resolves continuous actor movement against a grid of solid
// cells. Movement is integrated one axis at a time: an X move either passes,
// climbs a ledge, or stops flush against the first solid column it enters;
// the Y move then does the same for rows and sets the grounded flag.
package physics

import "math"

// eps absorbs float error when a body edge sits exactly on a cell boundary.
const eps = 1e-9

// Grid reports whether a cell blocks movement. Coordinates outside the world
// are passed through unchanged; the grid decides what lies there.
type Grid interface {
	Solid(cx, cy int) bool
}

// GridFunc adapts a function to the Grid interface.
type GridFunc func(cx, cy int) bool

// Solid calls f.
func (f GridFunc) Solid(cx, cy int) bool { return f(cx, cy) }

// Body is an axis-aligned actor with continuous position and velocity.
// Position is the top-left corner; units are whatever the Space uses.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

// CenterX returns the horizontal centre of the body.
func (b Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical centre of the body.
func (b Body) CenterY() float64 { return b.Y + b.H/2 }

// Outcome describes how an axis move resolved.
type Outcome int

const (
	Moved   Outcome = iota // full distance travelled
	Stepped                // climbed a ledge while moving horizontally
	Blocked                // stopped flush against a solid cell
)

// Space binds a grid to a cell size in world units.
type Space struct {
	Grid Grid
	Cell float64
}

// Span returns the first and last cell index covered by the half-open
// interval [lo, lo+size).
func (s Space) Span(lo, size float64) (first, last int) {
	first = int(math.Floor(lo/s.Cell + eps))
	last = int(math.Ceil((lo+size)/s.Cell-eps)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// Overlaps reports whether the rectangle touches any solid cell.
func (s Space) Overlaps(x, y, w, h float64) bool {
	x0, x1 := s.Span(x, w)
	y0, y1 := s.Span(y, h)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if s.Grid.Solid(cx, cy) {
				return true
			}
		}
	}
	return false
}

// BodyOverlaps reports whether b currently touches a solid cell.
func (s Space) BodyOverlaps(b *Body) bool {
	return s.Overlaps(b.X, b.Y, b.W, b.H)
}

func (s Space) columnSolid(cx, y0, y1 int) bool {
	for cy := y0; cy <= y1; cy++ {
		if s.Grid.Solid(cx, cy) {
			return true
		}
	}
	return false
}

func (s Space) rowSolid(cy, x0, x1 int) bool {
	for cx := x0; cx <= x1; cx++ {
		if s.Grid.Solid(cx, cy) {
			return true
		}
	}
	return false
}

// blockingColumn sweeps the columns entered by moving dx and returns the
// first solid one.
func (s Space) blockingColumn(b *Body, dx float64) (int, bool) {
	y0, y1 := s.Span(b.Y, b.H)
	first, last := s.Span(b.X, b.W)
	nfirst, nlast := s.Span(b.X+dx, b.W)
	if dx > 0 {
		for cx := last + 1; cx <= nlast; cx++ {
			if s.columnSolid(cx, y0, y1) {
				return cx, true
			}
		}
		return 0, false
	}
	for cx := first - 1; cx >= nfirst; cx-- {
		if s.columnSolid(cx, y0, y1) {
			return cx, true
		}
	}
	return 0, false
}

// MoveX moves b horizontally by dx. When a solid column is in the way and
// step > 0, the body first tries to climb by step, which needs clear
// headroom above the body and a clear spot at the destination. Otherwise it
// stops flush against the column and VX is zeroed.
func (s Space) MoveX(b *Body, dx, step float64) Outcome {
	if dx == 0 {
		return Moved
	}
	cx, hit := s.blockingColumn(b, dx)
	if !hit {
		b.X += dx
		return Moved
	}

	if step > 0 &&
		!s.Overlaps(b.X, b.Y-step, b.W, b.H) &&
		!s.Overlaps(b.X+dx, b.Y-step, b.W, b.H) {
		b.X += dx
		b.Y -= step
		b.Grounded = false
		return Stepped
	}

	if dx > 0 {
		b.X = float64(cx)*s.Cell - b.W
	} else {
		b.X = float64(cx+1) * s.Cell
	}
	b.VX = 0
	return Blocked
}

// MoveY moves b vertically by dy, stopping flush against the first solid row.
// Grounded becomes true when a downward move is blocked and false whenever
// the move completes.
func (s Space) MoveY(b *Body, dy float64) Outcome {
	if dy == 0 {
		return Moved
	}
	x0, x1 := s.Span(b.X, b.W)
	first, last := s.Span(b.Y, b.H)
	nfirst, nlast := s.Span(b.Y+dy, b.H)

	if dy > 0 {
		for cy := last + 1; cy <= nlast; cy++ {
			if s.rowSolid(cy, x0, x1) {
				b.Y = float64(cy)*s.Cell - b.H
				b.VY = 0
				b.Grounded = true
				return Blocked
			}
		}
	} else {
		for cy := first - 1; cy >= nfirst; cy-- {
			if s.rowSolid(cy, x0, x1) {
				b.Y = float64(cy+1) * s.Cell
				b.VY = 0
				b.Grounded = false
				return Blocked
			}
		}
	}
	b.Y += dy
	b.Grounded = false
	return Moved
}

// Bounds is the allowed range of a body's top-left corner.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Clamp keeps b's position within the bounds.
func (bb Bounds) Clamp(b *Body) {
	b.X = math.Max(bb.MinX, math.Min(bb.MaxX, b.X))
	b.Y = math.Max(bb.MinY, math.Min(bb.MaxY, b.Y))
}
