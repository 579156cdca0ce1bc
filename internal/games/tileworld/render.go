package tileworld

import (
	"image/color"
	"math"

	"github.com/vovakirdan/sandpit/internal/core"
	"github.com/vovakirdan/sandpit/internal/games/tileworld/terrain"
)

type palette struct {
	top, mid, edge color.RGBA
}

var blockPalette = map[terrain.Kind]palette{
	terrain.Grass:  {core.Hex("#42d66a"), core.Hex("#2aa84a"), core.RGBA(0, 0, 0, 0.22)},
	terrain.Dirt:   {core.Hex("#a06a3a"), core.Hex("#7c4f2a"), core.RGBA(0, 0, 0, 0.22)},
	terrain.Stone:  {core.Hex("#9aa3ad"), core.Hex("#667180"), core.RGBA(0, 0, 0, 0.26)},
	terrain.Water:  {core.RGBA(56, 189, 248, 0.55), core.RGBA(59, 130, 246, 0.38), core.RGBA(255, 255, 255, 0.10)},
	terrain.Wood:   {core.Hex("#b07a40"), core.Hex("#7a4b25"), core.RGBA(0, 0, 0, 0.25)},
	terrain.Leaves: {core.RGBA(134, 239, 172, 0.35), core.RGBA(34, 197, 94, 0.55), core.RGBA(0, 0, 0, 0.20)},
}

var (
	colorSkyTop      = core.Hex("#071022")
	colorSkyBottom   = core.Hex("#02030b")
	colorStar        = core.RGBA(255, 255, 255, 0.08)
	colorTarget      = core.RGBA(34, 211, 238, 0.8)
	colorPlayer      = core.RGBA(56, 189, 248, 0.95)
	colorPlayerShade = core.RGBA(0, 0, 0, 0.25)
	colorHotbar      = core.RGBA(0, 0, 0, 0.35)
	colorHotbarEdge  = core.RGBA(255, 255, 255, 0.18)
	colorSlot        = core.RGBA(255, 255, 255, 0.06)
	colorSlotEdge    = core.RGBA(255, 255, 255, 0.15)
	colorSlotActive  = core.RGBA(34, 211, 238, 0.9)
)

// topStrip returns the height of the lighter band drawn along a tile's top
// edge, in world pixels.
func topStrip(k terrain.Kind, tile float64) float64 {
	switch k {
	case terrain.Water:
		return math.Max(2, tile*0.16)
	case terrain.Leaves:
		return math.Max(2, tile*0.18)
	default:
		return math.Max(3, tile*0.22)
	}
}

// view maps world pixels to surface pixels for the current camera.
type view struct {
	cam  Camera
	zoom float64
}

func (v view) rect(x, y, w, h float64) core.Rect {
	return core.Viewport{Scale: v.zoom}.DestF(x-v.cam.X, y-v.cam.Y, w, h)
}

// renderWorld draws sky, blocks and the player. target is the tile under the
// pointer; highlight enables its outline.
func renderWorld(s *State, dst *core.PixelBuffer, zoom float64, target terrain.Point, highlight bool) {
	renderSky(dst)

	v := view{cam: s.Camera, zoom: zoom}
	t := s.Tile()
	viewW := float64(dst.Width()) / zoom
	viewH := float64(dst.Height()) / zoom
	x0 := core.FloorInt(s.Camera.X/t) - 1
	x1 := core.FloorInt((s.Camera.X+viewW)/t) + 1
	y0 := core.FloorInt(s.Camera.Y/t) - 1
	y1 := core.FloorInt((s.Camera.Y+viewH)/t) + 1

	edges := t*zoom >= 4
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			k := s.World.Block(tx, ty)
			if k == terrain.Air {
				continue
			}
			c := blockPalette[k]
			px, py := float64(tx)*t, float64(ty)*t
			cell := v.rect(px, py, t, t)
			dst.FillRect(cell, c.mid)
			dst.FillRect(v.rect(px, py, t, topStrip(k, t)), c.top)
			if edges {
				dst.StrokeRect(cell, c.edge)
			}
		}
	}

	if highlight && s.Reachable(target.X, target.Y) {
		r := v.rect(float64(target.X)*t, float64(target.Y)*t, t, t)
		if edges {
			r = core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
		}
		dst.StrokeRect(r, colorTarget)
	}

	p := s.Player
	dst.FillRect(v.rect(p.X, p.Y, p.W, p.H), colorPlayer)
	dst.FillRect(v.rect(p.X, p.Y, p.W, 4), colorPlayerShade)
}

// renderSky fills a vertical gradient with a fixed scatter of faint stars.
func renderSky(dst *core.PixelBuffer) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	for y := 0; y < h; y++ {
		f := float64(y) / float64(max(h-1, 1))
		c := core.RGB(
			lerp8(colorSkyTop.R, colorSkyBottom.R, f),
			lerp8(colorSkyTop.G, colorSkyBottom.G, f),
			lerp8(colorSkyTop.B, colorSkyBottom.B, f),
		)
		dst.FillRect(core.Rect{Y: y, W: w, H: 1}, c)
	}
	for i := 0; i < 36; i++ {
		dst.Blend((i*173)%w, (i*97)%h, colorStar)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(core.Lerp(float64(a), float64(b), t)))
}

// renderHotbar draws the block slots centred along the bottom edge. Layout
// units are window pixels, shrunk on narrow surfaces.
func renderHotbar(dst *core.PixelBuffer, selected terrain.Kind) {
	const barW, barH = 220.0, 44.0
	u := math.Min(1, float64(dst.Width())/480)
	hv := core.Viewport{
		OffsetX: core.FloorInt(float64(dst.Width())/2 - barW*u/2),
		OffsetY: core.FloorInt(float64(dst.Height()) - (barH+14)*u),
		Scale:   u,
	}
	bar := hv.DestF(0, 0, barW, barH)
	dst.FillRect(bar, colorHotbar)
	dst.StrokeRect(bar, colorHotbarEdge)

	for i, k := range Hotbar {
		sx := 14 + float64(i)*64
		c := blockPalette[k]
		dst.FillRect(hv.DestF(sx, 10, 24, 24), colorSlot)
		dst.FillRect(hv.DestF(sx+4, 14, 16, 16), c.mid)
		dst.FillRect(hv.DestF(sx+4, 14, 16, 4), c.top)
		edge := colorSlotEdge
		if k == selected {
			edge = colorSlotActive
		}
		dst.StrokeRect(hv.DestF(sx, 10, 24, 24), edge)
	}
}
