package terrain

import (
	"math"
	"unicode/utf16"
)

// HashSeed folds a seed text into 32 bits with FNV-1a over its UTF-16 code
// units, so that seeds typed in any host map to the same world.
func HashSeed(text string) uint32 {
	h := uint32(2166136261)
	for _, u := range utf16.Encode([]rune(text)) {
		h ^= uint32(u)
		h *= 16777619
	}
	return h
}

// mulberry32 returns the first output of a mulberry32 stream seeded with a,
// in [0, 1).
func mulberry32(a uint32) float64 {
	a += 0x6d2b79f5
	t := a
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}

// Rand01 returns a stable pseudo-random value in [0, 1) for lattice point n.
func Rand01(seed uint32, n int) float64 {
	return mulberry32(seed + uint32(n*1013))
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Noise1D is smoothed value noise in [-1, 1] with lattice spacing period.
func Noise1D(seed uint32, x, period float64) float64 {
	fx := x / period
	i0 := math.Floor(fx)
	t := fx - i0
	v0 := Rand01(seed, int(i0))
	v1 := Rand01(seed, int(i0)+1)
	s := smoothstep(t)
	return (v0*(1-s)+v1*s)*2 - 1
}
