package tileworld

import (
	"math"

	"github.com/vovakirdan/sandpit/internal/config"
	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
	"github.com/vovakirdan/sandpit/internal/physics"
)

// Input is the movement input for one tick.
type Input struct {
	Left, Right bool
	Up          bool // jump, or swim up in water
	Down        bool // swim down
}

// Camera is the world pixel shown at the top-left of the view.
type Camera struct {
	X, Y float64
}

// State is a running tile world. Positions are world pixels; one tile is
// cfg.World.TileSize pixels wide.
type State struct {
	World  *World
	Player physics.Body
	Camera Camera
	Time   float64 // seconds simulated since spawn

	lastBoost float64
	cfg       config.TileWorldConfig
}

// NewState places a fresh player in w.
func NewState(w *World, cfg config.TileWorldConfig) *State {
	s := &State{World: w, cfg: cfg}
	s.Spawn()
	return s
}

// Tile returns the tile size in world pixels.
func (s *State) Tile() float64 {
	return s.cfg.World.TileSize
}

// Spawn drops the player above the middle of the world and resets the clock.
func (s *State) Spawn() {
	t := s.Tile()
	pc := s.cfg.Player
	s.Player = physics.Body{
		X: float64(s.World.Width()) * t * pc.SpawnX,
		Y: t * pc.SpawnY,
		W: t * pc.Width,
		H: t * pc.Height,
	}
	s.Time = 0
	s.lastBoost = math.Inf(-1)
}

func (s *State) waterAt(px, py float64) bool {
	t := s.Tile()
	return s.World.Block(core.FloorInt(px/t), core.FloorInt(py/t)) == terrain.Water
}

// WaterState samples the body, feet and head of the player. The player is in
// water when the body or feet are; at the surface when in water with the
// head above it.
func (s *State) WaterState() (inWater, atSurface, headInWater bool) {
	p := s.Player
	cx := p.CenterX()
	body := s.waterAt(cx, p.Y+p.H*0.6)
	feet := s.waterAt(cx, p.Y+p.H-2)
	head := s.waterAt(cx, p.Y+4)
	inWater = body || feet
	return inWater, inWater && !head, head
}

// Tick advances the player by dt seconds, clamped to core.MaxFrameDelta.
func Tick(s *State, in Input, dt float64) {
	dt = core.ClampDelta(dt)
	ph := s.cfg.Physics
	p := &s.Player
	t := s.Tile()
	s.Time += dt

	inWater, atSurface, headInWater := s.WaterState()

	accel, maxV := ph.Accel, ph.MaxSpeed
	if inWater {
		accel, maxV = ph.WaterAccel, ph.WaterMaxSpeed
	}
	friction := ph.FrictionAir
	switch {
	case p.Grounded:
		friction = ph.FrictionGround
	case inWater:
		friction = ph.FrictionWater
	}

	if in.Left {
		p.VX -= accel * dt
	}
	if in.Right {
		p.VX += accel * dt
	}
	if !in.Left && !in.Right {
		p.VX -= p.VX * friction * dt
	}
	p.VX = core.ClampF(p.VX, -maxV, maxV)

	if inWater {
		p.VY += ph.Buoyancy * dt
		p.VY -= p.VY * ph.WaterDrag * dt
		if in.Up {
			p.VY -= ph.Swim * dt
		}
		if in.Down {
			p.VY += ph.Swim * ph.SwimDown * dt
		}
		if atSurface && in.Up && s.Time-s.lastBoost > ph.BoostInterval && p.VY > ph.BoostGate {
			p.VY = -ph.SurfaceBoost
			s.lastBoost = s.Time
		}
		p.Grounded = false
	} else {
		p.VY += ph.Gravity * dt
		if in.Up && p.Grounded {
			p.VY = -ph.Jump
			p.Grounded = false
		}
	}

	space := physics.Space{Grid: s.World, Cell: t}
	step := ph.StepHeight * t
	if headInWater {
		step = 0
	}
	space.MoveX(p, p.VX*dt, step)
	space.MoveY(p, p.VY*dt)

	physics.Bounds{
		MinX: 2,
		MaxX: float64(s.World.Width())*t - p.W - 2,
		MaxY: float64(s.World.Height())*t - p.H - 2,
	}.Clamp(p)
}

// Follow eases the camera toward the player and keeps it inside the world.
// viewW and viewH are the visible area in world pixels.
func (s *State) Follow(viewW, viewH, dt float64) {
	p := s.Player
	tx := p.CenterX() - viewW/2
	ty := p.CenterY() - viewH/2
	k := 1 - math.Pow(s.cfg.Render.CameraSmoothing, dt)
	s.Camera.X += (tx - s.Camera.X) * k
	s.Camera.Y += (ty - s.Camera.Y) * k
	s.clampCamera(viewW, viewH)
}

// CenterCamera snaps the camera onto the player.
func (s *State) CenterCamera(viewW, viewH float64) {
	s.Camera.X = s.Player.CenterX() - viewW/2
	s.Camera.Y = s.Player.CenterY() - viewH/2
	s.clampCamera(viewW, viewH)
}

func (s *State) clampCamera(viewW, viewH float64) {
	t := s.Tile()
	maxX := float64(s.World.Width())*t - viewW
	maxY := float64(s.World.Height())*t - viewH
	s.Camera.X = math.Max(0, math.Min(maxX, s.Camera.X))
	s.Camera.Y = math.Max(0, math.Min(maxY, s.Camera.Y))
}

// TileAt returns the tile containing world pixel (wx, wy).
func (s *State) TileAt(wx, wy float64) (tx, ty int) {
	t := s.Tile()
	return core.FloorInt(wx / t), core.FloorInt(wy / t)
}

// Reachable reports whether the centre of tile (tx, ty) is within reach of
// the player's centre.
func (s *State) Reachable(tx, ty int) bool {
	t := s.Tile()
	bx := (float64(tx) + 0.5) * t
	by := (float64(ty) + 0.5) * t
	return math.Hypot(bx-s.Player.CenterX(), by-s.Player.CenterY()) <= t*s.cfg.Player.Reach
}

// Mine clears a reachable non-air tile. It reports whether the world changed.
func (s *State) Mine(tx, ty int) bool {
	if !s.Reachable(tx, ty) || s.World.Block(tx, ty) == terrain.Air {
		return false
	}
	return s.World.SetBlock(tx, ty, terrain.Air)
}

// Place puts k into a reachable air tile that does not overlap the player
// and touches a solid tile on one of its four sides.
func (s *State) Place(tx, ty int, k terrain.Kind) bool {
	if !s.Reachable(tx, ty) || s.World.Block(tx, ty) != terrain.Air {
		return false
	}
	t := s.Tile()
	rx, ry := float64(tx)*t, float64(ty)*t
	p := s.Player
	if rx < p.X+p.W && rx+t > p.X && ry < p.Y+p.H && ry+t > p.Y {
		return false
	}
	w := s.World
	if !w.Solid(tx+1, ty) && !w.Solid(tx-1, ty) && !w.Solid(tx, ty+1) && !w.Solid(tx, ty-1) {
		return false
	}
	return w.SetBlock(tx, ty, k)
}
