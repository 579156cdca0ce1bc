package sandbox

// Grid is the automaton board. Cells are stored in row-major order:
// index = y*W + x. Fire lifetimes and bomb fuses live in parallel slices
// and are zero for every other kind.
type Grid struct {
	W, H  int
	Cells []Kind
	TTL   []int // remaining ticks of a fire cell
	Fuse  []int // ticks until an armed bomb detonates; 0 = unarmed

	moved []uint32 // tick stamp of the last move into each cell
	epoch uint32
}

// NewGrid creates an all-empty grid.
func NewGrid(w, h int) *Grid {
	n := w * h
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Kind, n),
		TTL:   make([]int, n),
		Fuse:  make([]int, n),
		moved: make([]uint32, n),
	}
}

// In reports whether (x, y) lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index converts in-bounds coordinates to a flat index.
func (g *Grid) Index(x, y int) int {
	return y*g.W + x
}

// At returns the kind at (x, y). Outside the grid reads as Wall so every
// rule treats the border as an immovable solid.
func (g *Grid) At(x, y int) Kind {
	if !g.In(x, y) {
		return Wall
	}
	return g.Cells[y*g.W+x]
}

// Set places k at (x, y) with cleared aux state. Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, k Kind) {
	if !g.In(x, y) {
		return
	}
	i := y*g.W + x
	g.Cells[i] = k
	g.TTL[i] = 0
	g.Fuse[i] = 0
}

// swap exchanges two cells with their aux state and marks both as moved
// for the current tick.
func (g *Grid) swap(i, j int) {
	g.Cells[i], g.Cells[j] = g.Cells[j], g.Cells[i]
	g.TTL[i], g.TTL[j] = g.TTL[j], g.TTL[i]
	g.Fuse[i], g.Fuse[j] = g.Fuse[j], g.Fuse[i]
	g.moved[i] = g.epoch
	g.moved[j] = g.epoch
}

// beginTick starts a new movement stamp.
func (g *Grid) beginTick() {
	g.epoch++
	if g.epoch == 0 {
		clear(g.moved)
		g.epoch = 1
	}
}

// movedThisTick reports whether cell i already moved during the current tick.
func (g *Grid) movedThisTick(i int) bool {
	return g.moved[i] == g.epoch
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.Cells)
	clear(g.TTL)
	clear(g.Fuse)
}

// Counts returns the number of cells of each kind.
func (g *Grid) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, k := range g.Cells {
		counts[k]++
	}
	return counts
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.Cells, g.Cells)
	copy(c.TTL, g.TTL)
	copy(c.Fuse, g.Fuse)
	return c
}

// Solid implements physics.Grid for the player.
func (g *Grid) Solid(cx, cy int) bool {
	return g.At(cx, cy).BlocksPlayer()
}
