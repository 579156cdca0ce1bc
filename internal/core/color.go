package core

import "image/color"

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a straight-alpha color with alpha given in [0, 1],
// matching how CSS-style colors are usually written.
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: uint8(ClampF(a, 0, 1)*255 + 0.5)}
}

// Hex parses "#rrggbb" into an opaque color. Malformed input yields black.
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return RGB(0, 0, 0)
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return RGB(0, 0, 0)
		}
		v[i] = hi<<4 | lo
	}
	return RGB(v[0], v[1], v[2])
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Over composites src over dst. Both use straight (non-premultiplied) alpha.
func Over(dst, src color.RGBA) color.RGBA {
	sa := uint32(src.A)
	if sa == 0xff {
		return src
	}
	da := uint32(dst.A)
	outA := sa + da*(0xff-sa)/0xff
	if outA == 0 {
		return color.RGBA{}
	}
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa + uint32(d)*da*(0xff-sa)/0xff) / outA)
	}
	return color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(outA),
	}
}
