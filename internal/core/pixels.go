package core

import "image/color"

// PixelBuffer is an RGBA drawing surface.
// Games draw into it with integer pixel operations; the platform decides how
// the pixels reach the terminal or window.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8 // 4 bytes per pixel, row-major
}

// NewPixelBuffer creates a buffer of the given size filled with opaque black.
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Bounds returns the buffer area as a Rect at the origin.
func (b *PixelBuffer) Bounds() Rect {
	return Rect{W: b.width, H: b.height}
}

// Pix exposes the raw RGBA bytes, suitable for ebiten's WritePixels.
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

// Resize reallocates the backing store. Content is not preserved since every
// frame is redrawn in full.
func (b *PixelBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == b.width && height == b.height && b.pix != nil {
		return
	}
	b.width = width
	b.height = height
	b.pix = make([]uint8, width*height*4)
	b.Clear(color.RGBA{A: 0xff})
}

// Clear fills the whole buffer with c, ignoring alpha blending.
func (b *PixelBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// Set replaces the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (b *PixelBuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	o := (y*b.width + x) * 4
	b.pix[o+0] = c.R
	b.pix[o+1] = c.G
	b.pix[o+2] = c.B
	b.pix[o+3] = c.A
}

// At returns the pixel at (x, y), or transparent black when out of bounds.
func (b *PixelBuffer) At(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	o := (y*b.width + x) * 4
	return color.RGBA{R: b.pix[o], G: b.pix[o+1], B: b.pix[o+2], A: b.pix[o+3]}
}

// Blend composites c over the pixel at (x, y) using c's alpha.
func (b *PixelBuffer) Blend(x, y int, c color.RGBA) {
	if c.A == 0xff {
		b.Set(x, y, c)
		return
	}
	if c.A == 0 || x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.Set(x, y, Over(b.At(x, y), c))
}

// FillRect blends c over every pixel of r that lies inside the buffer.
func (b *PixelBuffer) FillRect(r Rect, c color.RGBA) {
	r = r.Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.Blend(x, y, c)
		}
	}
}

// StrokeRect blends a one pixel outline of r.
func (b *PixelBuffer) StrokeRect(r Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	b.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	if r.H > 1 {
		b.FillRect(Rect{X: r.X, Y: r.Bottom() - 1, W: r.W, H: 1}, c)
	}
	if r.H > 2 {
		b.FillRect(Rect{X: r.X, Y: r.Y + 1, W: 1, H: r.H - 2}, c)
		if r.W > 1 {
			b.FillRect(Rect{X: r.Right() - 1, Y: r.Y + 1, W: 1, H: r.H - 2}, c)
		}
	}
}

// Viewport maps a source grid onto a destination area with a uniform scale.
// The scale may be fractional, including below 1 when the destination is
// smaller than the source.
type Viewport struct {
	OffsetX, OffsetY int
	Scale            float64
	SrcW, SrcH       int
}

// FitViewport computes the largest uniform scale that shows a srcW x srcH
// grid inside a dstW x dstH surface, centred. Integer scales are preferred
// when at least 1x fits, which keeps cells square.
func FitViewport(srcW, srcH, dstW, dstH int) Viewport {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Viewport{Scale: 1, SrcW: srcW, SrcH: srcH}
	}
	scale := min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	if scale >= 1 {
		scale = float64(int(scale))
	}
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	return Viewport{
		OffsetX: (dstW - w) / 2,
		OffsetY: (dstH - h) / 2,
		Scale:   scale,
		SrcW:    srcW,
		SrcH:    srcH,
	}
}

// ToSource converts a destination pixel to a source cell.
// ok is false when the pixel lies outside the mapped area.
func (v Viewport) ToSource(px, py float64) (cx, cy int, ok bool) {
	if v.Scale <= 0 {
		return 0, 0, false
	}
	cx = FloorInt((px - float64(v.OffsetX)) / v.Scale)
	cy = FloorInt((py - float64(v.OffsetY)) / v.Scale)
	ok = cx >= 0 && cx < v.SrcW && cy >= 0 && cy < v.SrcH
	return cx, cy, ok
}

// Dest returns the destination rectangle covered by the source rectangle r.
func (v Viewport) Dest(r Rect) Rect {
	return v.DestF(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}

// DestF returns the destination rectangle covered by a source-space box
// with fractional position and size. The result is at least one pixel.
func (v Viewport) DestF(x, y, w, h float64) Rect {
	x0 := v.OffsetX + FloorInt(x*v.Scale)
	y0 := v.OffsetY + FloorInt(y*v.Scale)
	x1 := v.OffsetX + FloorInt((x+w)*v.Scale)
	y1 := v.OffsetY + FloorInt((y+h)*v.Scale)
	return Rect{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

// BlitScaled draws src into b through the viewport with nearest-neighbour
// sampling, blending by the source alpha.
func (b *PixelBuffer) BlitScaled(src *PixelBuffer, v Viewport) {
	if v.Scale <= 0 {
		return
	}
	area := Rect{
		X: v.OffsetX,
		Y: v.OffsetY,
		W: int(float64(src.width) * v.Scale),
		H: int(float64(src.height) * v.Scale),
	}.Intersect(b.Bounds())
	inv := 1 / v.Scale
	for y := area.Y; y < area.Bottom(); y++ {
		sy := min(int(float64(y-v.OffsetY)*inv), src.height-1)
		for x := area.X; x < area.Right(); x++ {
			sx := min(int(float64(x-v.OffsetX)*inv), src.width-1)
			b.Blend(x, y, src.At(sx, sy))
		}
	}
}
