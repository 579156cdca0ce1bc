package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sandpit/internal/core"
)

// halfBlock draws the upper pixel in the foreground and the lower one in the
// background, so each terminal cell shows two vertically stacked pixels.
const halfBlock = "▀"

type cellColors struct {
	top, bottom color.RGBA
}

// PixelRenderer converts pixel buffers into styled terminal text. Styles are
// cached per color pair since frames reuse a small palette.
type PixelRenderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewPixelRenderer creates a renderer with an empty style cache.
func NewPixelRenderer() *PixelRenderer {
	return &PixelRenderer{styles: make(map[cellColors]lipgloss.Style)}
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (r *PixelRenderer) style(cc cellColors) lipgloss.Style {
	if st, ok := r.styles[cc]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(hexColor(cc.top)).Background(hexColor(cc.bottom))
	r.styles[cc] = st
	return st
}

// Render returns one text row per two pixel rows. Adjacent cells with the
// same colors share one styled run to minimize ANSI escape sequences.
func (r *PixelRenderer) Render(b *core.PixelBuffer) string {
	rows := (b.Height() + 1) / 2
	var sb strings.Builder
	sb.Grow(b.Width()*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < b.Width() {
			start := r.cell(b, x, row)
			n := 0
			for x < b.Width() && r.cell(b, x, row) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (r *PixelRenderer) cell(b *core.PixelBuffer, x, row int) cellColors {
	top := b.At(x, row*2)
	bottom := b.At(x, row*2+1)
	top.A, bottom.A = 0xff, 0xff
	return cellColors{top: top, bottom: bottom}
}

// PointerPixel maps a terminal cell to surface coordinates at its centre.
func PointerPixel(col, row int) (float64, float64) {
	return float64(col) + 0.5, float64(row*2) + 1
}
