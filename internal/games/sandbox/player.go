package sandbox

import (
	"math"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/physics"
)

// Player tuning is expressed per frame at 60 fps; f rescales it to the
// actual frame time.
func stepPlayer(s *State, in Input, dt float64) {
	c := s.cfg.Player
	g := s.Grid
	p := &s.Player
	f := dt * 60

	wet := s.playerInWater()
	accel, maxV, damping := c.Accel, c.MaxSpeed, c.Damping
	if wet {
		accel, maxV, damping = c.WaterAccel, c.WaterMaxSpeed, c.WaterDamping
	}

	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	if dir != 0 {
		p.VX += float64(dir) * accel * f
	} else {
		p.VX *= math.Pow(damping, f)
	}
	p.VX = core.ClampF(p.VX, -maxV, maxV)

	if wet {
		p.VY += c.WaterSink * f
		p.VY *= math.Pow(c.WaterDrag, f)
		if in.Up {
			p.VY -= c.Swim * f
		}
		p.Grounded = false
	} else {
		p.VY += c.Gravity * f
		if in.Up && p.Grounded {
			p.VY = -c.Jump
			p.Grounded = false
		}
	}

	space := physics.Space{Grid: g, Cell: 1}
	step := c.StepHeight
	if wet {
		step = 0
	}
	dx := p.VX * f
	if space.MoveX(p, dx, step) == physics.Blocked {
		s.pushBombs(core.Sign(dx))
	}
	space.MoveY(p, p.VY*f)

	physics.Bounds{
		MaxX: float64(g.W) - p.W,
		MaxY: float64(g.H) - p.H,
	}.Clamp(p)
}

// playerInWater samples the cell under the feet and the body centre.
func (s *State) playerInWater() bool {
	p := s.Player
	g := s.Grid
	feet := g.At(core.FloorInt(p.X), core.FloorInt(p.Y+p.H-1))
	body := g.At(core.FloorInt(p.CenterX()), core.FloorInt(p.Y+math.Floor(p.H/2)))
	return feet == Water || body == Water
}

// pushBombs shoves bombs in the column the player walked into one cell
// further, when the cell beyond is empty. Fuses travel with the bomb.
func (s *State) pushBombs(dir int) {
	if dir == 0 {
		return
	}
	g := s.Grid
	p := s.Player
	space := physics.Space{Cell: 1}

	first, last := space.Span(p.X, p.W)
	front := last + 1
	if dir < 0 {
		front = first - 1
	}
	y0, y1 := space.Span(p.Y, p.H)
	for y := y0; y <= y1; y++ {
		if g.At(front, y) != Bomb || g.At(front+dir, y) != Empty {
			continue
		}
		g.swap(g.Index(front, y), g.Index(front+dir, y))
	}
}
