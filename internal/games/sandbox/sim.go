package sandbox

import (
	"github.com/vovakirdan/sandpit/internal/config"
	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/physics"
)

// Input is one frame of player and brush input in grid coordinates.
type Input struct {
	Left, Right bool
	Up          bool // jump, or swim up in water

	Paint   bool // brush is down
	Erase   bool // paint Empty instead of Tool
	CursorX int
	CursorY int
	Tool    Kind
	Brush   int // radius in cells
}

// State is the whole sandbox simulation: the board, the player and the
// counters a host reads back. It holds no rendering or host state.
type State struct {
	Grid        *Grid
	Player      physics.Body
	Frame       int
	Detonations int

	cfg config.SandboxConfig
	rng *core.RNG
}

// NewState creates an empty board with the player at the spawn point.
func NewState(cfg config.SandboxConfig, seed int64) *State {
	s := &State{
		Grid: NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		cfg:  cfg,
		rng:  core.NewRNG(seed),
	}
	s.spawn()
	return s
}

// Config returns the tuning the state was created with.
func (s *State) Config() config.SandboxConfig {
	return s.cfg
}

// Reset wipes the board and respawns the player. Counters restart.
func (s *State) Reset() {
	s.Grid.Clear()
	s.Frame = 0
	s.Detonations = 0
	s.spawn()
}

func (s *State) spawn() {
	p := s.cfg.Player
	s.Player = physics.Body{
		X: float64(s.Grid.W / 2),
		Y: p.SpawnY,
		W: p.Width,
		H: p.Height,
	}
}

// Tick advances the simulation by one frame of dt seconds:
// paint, player, ignition, movement, then fuses. dt is clamped to
// core.MaxFrameDelta.
func Tick(s *State, in Input, dt float64) {
	dt = core.ClampDelta(dt)
	s.Frame++
	s.Grid.beginTick()

	if in.Paint {
		k := in.Tool
		if in.Erase {
			k = Empty
		}
		Paint(s, in.CursorX, in.CursorY, in.Brush, k)
	}

	stepPlayer(s, in, dt)
	s.ignite()
	s.move()
	s.burnFuses()
}

// Paint stamps k into every cell within radius r of (cx, cy). Cells off the
// board are skipped. Fire gets a fresh lifetime; every other kind starts with
// cleared fire and fuse state.
func Paint(s *State, cx, cy, r int, k Kind) {
	g := s.Grid
	core.Disc(r, func(dx, dy, _ int) {
		x, y := cx+dx, cy+dy
		if !g.In(x, y) {
			return
		}
		g.Set(x, y, k)
		if k == Fire {
			g.TTL[g.Index(x, y)] = s.cfg.Fire.PaintTTL
		}
	})
}

// nextToFire reports whether any 4-neighbour of (x, y) is burning.
func (s *State) nextToFire(x, y int) bool {
	g := s.Grid
	return g.At(x+1, y) == Fire || g.At(x-1, y) == Fire ||
		g.At(x, y+1) == Fire || g.At(x, y-1) == Fire
}

// ignite arms bombs, lights oil and detonates gunpowder next to fire.
// A bomb is armed once; an armed fuse is never reset.
func (s *State) ignite() {
	g := s.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			k := g.Cells[i]
			if k != Bomb && k != Oil && k != Gunpowder {
				continue
			}
			if !s.nextToFire(x, y) {
				continue
			}
			switch k {
			case Bomb:
				if g.Fuse[i] == 0 {
					g.Fuse[i] = s.cfg.Bomb.Fuse
				}
			case Oil:
				s.igniteAt(x, y, s.cfg.Fire.OilTTL)
			case Gunpowder:
				g.Set(x, y, Empty)
				s.Explode(x, y, s.cfg.Gunpowder.Radius)
			}
		}
	}
}

// igniteAt turns (x, y) into fire with at least ttl ticks left.
// Walls and bombs do not burn.
func (s *State) igniteAt(x, y, ttl int) {
	g := s.Grid
	if !g.In(x, y) {
		return
	}
	i := g.Index(x, y)
	k := g.Cells[i]
	if k.Fireproof() {
		return
	}
	cur := 0
	if k == Fire {
		cur = g.TTL[i]
	}
	g.Cells[i] = Fire
	g.TTL[i] = max(cur, ttl)
	g.Fuse[i] = 0
}

// move applies the per-kind rules bottom-up. Each row is scanned forward or
// backward depending on (row + frame) parity so liquids do not drift to one
// side. A cell that already moved this tick is not processed again.
func (s *State) move() {
	g := s.Grid
	for y := g.H - 1; y >= 0; y-- {
		forward := (y+s.Frame)&1 == 0
		for n := 0; n < g.W; n++ {
			x := n
			if !forward {
				x = g.W - 1 - n
			}
			i := g.Index(x, y)
			if g.movedThisTick(i) {
				continue
			}
			if r := rules[g.Cells[i]]; r != nil {
				r(s, x, y, i)
			}
		}
	}
}

// burnFuses counts armed bombs down, throwing sparks near the end and
// detonating at zero.
func (s *State) burnFuses() {
	g := s.Grid
	b := s.cfg.Bomb
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			if g.Cells[i] != Bomb || g.Fuse[i] == 0 {
				continue
			}
			g.Fuse[i]--
			if g.Fuse[i] == 0 {
				s.Explode(x, y, b.Radius)
				continue
			}
			if g.Fuse[i] < b.SparkBelow && s.rng.Chance(b.SparkChance) {
				side := -1
				if s.rng.Bool() {
					side = 1
				}
				if g.At(x+side, y) == Empty {
					j := g.Index(x+side, y)
					g.Cells[j] = Fire
					g.TTL[j] = b.SparkTTL
				}
			}
		}
	}
}
