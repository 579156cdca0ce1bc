package sandbox

import (
	"math"

	"github.com/vovakirdan/sandpit/internal/core"
)

// Explode clears every cell within radius r of (cx, cy), leaving a ring of
// residual fire at the edge, and knocks the player away from the centre.
// Cells off the board are skipped.
func (s *State) Explode(cx, cy, r int) {
	g := s.Grid
	e := s.cfg.Explosion
	inner := float64(r) - e.RingWidth

	core.Disc(r, func(dx, dy, d2 int) {
		x, y := cx+dx, cy+dy
		if !g.In(x, y) {
			return
		}
		g.Set(x, y, Empty)
		if inRing(d2, inner) && s.rng.Chance(e.RingChance) {
			i := g.Index(x, y)
			g.Cells[i] = Fire
			g.TTL[i] = e.RingTTLMin + s.rng.IntN(e.RingTTLSpread)
		}
	})

	s.knockback(cx, cy, r)
	s.Detonations++
}

// inRing reports whether a cell at squared distance d2 lies outside the
// inner ring radius.
func inRing(d2 int, inner float64) bool {
	return inner < 0 || float64(d2) > inner*inner
}

// knockback pushes the player radially, scaled linearly from full strength
// at the centre to nothing at radius plus reach.
func (s *State) knockback(cx, cy, r int) {
	e := s.cfg.Explosion
	p := &s.Player

	dx := p.CenterX() - float64(cx)
	dy := p.CenterY() - float64(cy)
	dist := math.Hypot(dx, dy)
	reach := float64(r) + e.KnockbackReach
	if dist >= reach {
		return
	}

	k := (reach - dist) / reach
	if dist > 0 {
		p.VX += dx / dist * e.Push * k
	}
	p.VY -= e.Lift * k
	p.Grounded = false
}
