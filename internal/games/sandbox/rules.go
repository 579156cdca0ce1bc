package sandbox

// rule advances the cell at (x, y), flat index i, by one tick.
type rule func(s *State, x, y, i int)

// rules maps each kind to its transition. Empty and Wall never change on
// their own.
var rules = [...]rule{
	Sand:      stepSand,
	Water:     stepWater,
	Bomb:      stepBomb,
	Fire:      stepFire,
	Oil:       stepOil,
	Gunpowder: stepGunpowder,
}

var (
	fireProbeHorizontal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	fireProbeVertical   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

func isEmpty(k Kind) bool { return k == Empty }

// sand sinks through water but rests on oil.
func sandDisplaces(k Kind) bool { return k == Empty || k == Water }

// gunpowder and bombs sink through both liquids.
func heavyDisplaces(k Kind) bool { return k == Empty || k.Liquid() }

// moveInto swaps cell i with (x, y) when accept allows the kind there.
// Off-board targets read as Wall, which no rule accepts.
func (s *State) moveInto(i, x, y int, accept func(Kind) bool) bool {
	g := s.Grid
	if !accept(g.At(x, y)) {
		return false
	}
	g.swap(i, g.Index(x, y))
	return true
}

// side picks the first sideways direction from a parity of position and
// frame. Moving one cell and advancing one frame keeps the parity, so a
// flowing cell keeps its heading until blocked.
func (s *State) side(x, y int) int {
	if (x+y+s.Frame)&1 == 0 {
		return -1
	}
	return 1
}

// fall drops a granular cell straight down, or diagonally with the first
// diagonal chosen by dir.
func (s *State) fall(i, x, y, dir int, accept func(Kind) bool) {
	if s.moveInto(i, x, y+1, accept) {
		return
	}
	if s.moveInto(i, x+dir, y+1, accept) {
		return
	}
	s.moveInto(i, x-dir, y+1, accept)
}

func stepSand(s *State, x, y, i int) {
	dir := 1
	if (x+y)%2 == 0 {
		dir = -1
	}
	s.fall(i, x, y, dir, sandDisplaces)
}

func stepGunpowder(s *State, x, y, i int) {
	s.fall(i, x, y, s.side(x, y), heavyDisplaces)
}

// Bombs drop straight down and never slide off piles.
func stepBomb(s *State, x, y, i int) {
	s.moveInto(i, x, y+1, heavyDisplaces)
}

// stepWater falls, sinks under oil, slides diagonally, then spreads
// sideways to level out.
func stepWater(s *State, x, y, i int) {
	g := s.Grid
	switch g.At(x, y+1) {
	case Empty, Oil:
		g.swap(i, g.Index(x, y+1))
		return
	}

	dir := s.side(x, y)
	if s.moveInto(i, x+dir, y+1, isEmpty) || s.moveInto(i, x-dir, y+1, isEmpty) {
		return
	}
	if s.spread(i, x, y, dir) {
		return
	}
	s.spread(i, x, y, -dir)
}

// spread moves water to the first empty cell within reach along the row.
// The probe passes through liquid and stops at anything solid.
func (s *State) spread(i, x, y, dir int) bool {
	g := s.Grid
	for d := 1; d <= s.cfg.Water.Spread; d++ {
		tx := x + dir*d
		switch g.At(tx, y) {
		case Empty:
			g.swap(i, g.Index(tx, y))
			return true
		case Water, Oil:
			continue
		default:
			return false
		}
	}
	return false
}

// stepOil falls into empty space and treats water as a floor, so it ends
// up floating. It only slides to adjacent cells.
func stepOil(s *State, x, y, i int) {
	if s.moveInto(i, x, y+1, isEmpty) {
		return
	}
	dir := s.side(x, y)
	if s.moveInto(i, x+dir, y, isEmpty) {
		return
	}
	s.moveInto(i, x-dir, y, isEmpty)
}

// stepFire burns down, may rise into empty space and may set a neighbour
// alight.
func stepFire(s *State, x, y, i int) {
	g := s.Grid
	f := s.cfg.Fire

	g.TTL[i]--
	if g.TTL[i] <= 0 {
		g.Set(x, y, Empty)
		return
	}

	if g.At(x, y-1) == Empty && s.rng.Chance(f.DriftChance) {
		j := g.Index(x, y-1)
		ttl := max(g.TTL[i], g.TTL[j])
		g.swap(i, j)
		g.TTL[j] = ttl
		y--
	}

	if !s.rng.Chance(f.SpreadChance) {
		return
	}
	probe := fireProbeHorizontal
	if s.rng.Bool() {
		probe = fireProbeVertical
	}
	for _, d := range probe {
		nx, ny := x+d[0], y+d[1]
		switch g.At(nx, ny) {
		case Oil:
			s.igniteAt(nx, ny, f.SpreadTTL)
			return
		case Gunpowder:
			g.Set(nx, ny, Empty)
			s.Explode(nx, ny, s.cfg.Gunpowder.Radius)
			return
		}
	}
}
