package sandbox

import (
	"image/color"

	"github.com/vovakirdan/sandpit/internal/core"
)

// Colors used by the renderer.
var (
	ColorEmpty       = core.RGB(7, 12, 26)
	ColorSand        = core.RGB(245, 204, 110)
	ColorWater       = core.RGBA(80, 170, 255, 210.0/255)
	ColorOil         = core.RGBA(130, 96, 30, 235.0/255)
	ColorGunpowder   = core.RGB(70, 72, 78)
	ColorWall        = core.RGB(150, 160, 176)
	ColorBombIdle    = core.RGB(210, 25, 50)
	ColorBombArmed   = core.RGB(210, 70, 50)
	ColorPlayer      = core.RGBA(56, 189, 248, 0.95)
	ColorPlayerShade = core.RGBA(0, 0, 0, 0.25)
	ColorBrush       = core.RGBA(255, 255, 255, 0.3)
)

// cellColor returns the color of cell i. Fire flickers with a hash of the
// cell and frame so rendering never consumes simulation randomness.
func cellColor(g *Grid, i, frame int) color.RGBA {
	switch g.Cells[i] {
	case Sand:
		return ColorSand
	case Water:
		return ColorWater
	case Oil:
		return ColorOil
	case Gunpowder:
		return ColorGunpowder
	case Wall:
		return ColorWall
	case Bomb:
		if g.Fuse[i] > 0 {
			return ColorBombArmed
		}
		return ColorBombIdle
	case Fire:
		return core.RGBA(255, 120+flicker(i, frame)%40, 30, 230.0/255)
	}
	return ColorEmpty
}

func flicker(i, frame int) uint8 {
	h := uint32(i)*2654435761 ^ uint32(frame)*40503
	h ^= h >> 15
	h *= 2246822519
	h ^= h >> 13
	return uint8(h)
}

// RenderGrid rasterizes the board at native resolution, one pixel per cell.
// dst must be W x H.
func RenderGrid(g *Grid, frame int, dst *core.PixelBuffer) {
	dst.Clear(ColorEmpty)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			if g.Cells[i] == Empty {
				continue
			}
			dst.Blend(x, y, cellColor(g, i, frame))
		}
	}
}

// renderPlayer draws the player body with a darker top strip.
func renderPlayer(s *State, dst *core.PixelBuffer, v core.Viewport) {
	p := s.Player
	body := v.DestF(p.X, p.Y, p.W, p.H)
	dst.FillRect(body, ColorPlayer)
	strip := body
	strip.H = max(1, int(v.Scale/2))
	dst.FillRect(strip, ColorPlayerShade)
}

// renderBrush outlines the cells the brush would cover.
func renderBrush(dst *core.PixelBuffer, v core.Viewport, cx, cy, r int) {
	dst.StrokeRect(v.Dest(core.NewRect(cx-r, cy-r, 2*r+1, 2*r+1)), ColorBrush)
}
