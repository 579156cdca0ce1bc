package core

import (
	"image/color"
	"testing"
)

func TestNewPixelBuffer(t *testing.T) {
	b := NewPixelBuffer(8, 4)

	if b.Width() != 8 {
		t.Errorf("Width() = %d, expected 8", b.Width())
	}
	if b.Height() != 4 {
		t.Errorf("Height() = %d, expected 4", b.Height())
	}
	if len(b.Pix()) != 8*4*4 {
		t.Errorf("len(Pix()) = %d, expected %d", len(b.Pix()), 8*4*4)
	}
	if got := b.At(3, 2); got != (color.RGBA{A: 0xff}) {
		t.Errorf("new buffer pixel = %+v, expected opaque black", got)
	}
}

func TestPixelBufferSetAt(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	red := RGB(255, 0, 0)

	b.Set(1, 2, red)
	if got := b.At(1, 2); got != red {
		t.Errorf("At(1, 2) = %+v, expected %+v", got, red)
	}

	// Out of bounds writes are ignored
	b.Set(-1, 0, red)
	b.Set(4, 0, red)
	b.Set(0, 4, red)

	if got := b.At(-1, 0); got != (color.RGBA{}) {
		t.Errorf("out of bounds At = %+v, expected transparent", got)
	}
}

func TestPixelBufferBlend(t *testing.T) {
	b := NewPixelBuffer(1, 1)
	b.Clear(RGB(0, 0, 0))

	b.Blend(0, 0, color.RGBA{R: 255, A: 128})
	got := b.At(0, 0)
	if got.A != 255 {
		t.Errorf("blended alpha = %d, expected 255 over an opaque pixel", got.A)
	}
	if got.R < 126 || got.R > 130 {
		t.Errorf("blended red = %d, expected about half intensity", got.R)
	}

	b.Blend(0, 0, color.RGBA{G: 255, A: 0})
	if b.At(0, 0) != got {
		t.Error("fully transparent blend changed the pixel")
	}
}

func TestPixelBufferFillRectClips(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	white := RGB(255, 255, 255)

	b.FillRect(NewRect(2, 2, 10, 10), white)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := x >= 2 && y >= 2
			if (b.At(x, y) == white) != want {
				t.Errorf("pixel (%d, %d) filled = %v, expected %v", x, y, !want, want)
			}
		}
	}
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		dstW, dstH int
		scale      float64
		offX, offY int
	}{
		{"exact", 10, 5, 10, 5, 1, 0, 0},
		{"integer upscale", 10, 5, 65, 20, 4, 12, 0},
		{"downscale", 20, 10, 10, 10, 0.5, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FitViewport(tc.srcW, tc.srcH, tc.dstW, tc.dstH)
			if v.Scale != tc.scale {
				t.Errorf("Scale = %v, expected %v", v.Scale, tc.scale)
			}
			if v.OffsetX != tc.offX || v.OffsetY != tc.offY {
				t.Errorf("offset = (%d, %d), expected (%d, %d)", v.OffsetX, v.OffsetY, tc.offX, tc.offY)
			}
		})
	}
}

func TestViewportToSource(t *testing.T) {
	v := FitViewport(10, 5, 65, 20) // scale 4, offset (12, 0)

	cx, cy, ok := v.ToSource(12, 0)
	if !ok || cx != 0 || cy != 0 {
		t.Errorf("ToSource(12, 0) = (%d, %d, %v), expected (0, 0, true)", cx, cy, ok)
	}
	cx, cy, ok = v.ToSource(12+4*9+3, 19)
	if !ok || cx != 9 || cy != 4 {
		t.Errorf("ToSource(last pixel) = (%d, %d, %v), expected (9, 4, true)", cx, cy, ok)
	}
	if _, _, ok = v.ToSource(5, 5); ok {
		t.Error("ToSource inside the letterbox should not be ok")
	}
}

func TestBlitScaled(t *testing.T) {
	src := NewPixelBuffer(2, 1)
	src.Set(0, 0, RGB(255, 0, 0))
	src.Set(1, 0, RGB(0, 0, 255))

	dst := NewPixelBuffer(4, 2)
	dst.BlitScaled(src, FitViewport(2, 1, 4, 2))

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := RGB(255, 0, 0)
			if x >= 2 {
				want = RGB(0, 0, 255)
			}
			if got := dst.At(x, y); got != want {
				t.Errorf("dst (%d, %d) = %+v, expected %+v", x, y, got, want)
			}
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#2aa84a"); got != RGB(0x2a, 0xa8, 0x4a) {
		t.Errorf("Hex(#2aa84a) = %+v", got)
	}
	if got := Hex("nope"); got != RGB(0, 0, 0) {
		t.Errorf("Hex(nope) = %+v, expected black", got)
	}
}

func TestViewportDest(t *testing.T) {
	v := Viewport{OffsetX: 4, OffsetY: 2, Scale: 3, SrcW: 10, SrcH: 10}

	if got, want := v.Dest(NewRect(1, 1, 2, 2)), NewRect(7, 5, 6, 6); got != want {
		t.Errorf("Dest() = %+v, expected %+v", got, want)
	}
	if got, want := v.DestF(0.5, 0, 0.1, 0.1), NewRect(5, 2, 1, 1); got != want {
		t.Errorf("DestF() = %+v, expected %+v (never narrower than a pixel)", got, want)
	}
}
