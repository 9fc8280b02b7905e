package viz

import (
	"strings"

	"github.com/san-kum/strange/internal/dynamo"
	"github.com/san-kum/strange/internal/raster"
)

// Braille cells pack 2x4 dots per character, so a WxH canvas addresses
// (W*2)x(H*4) sub-pixels. Dot bit layout within U+2800:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille dot-matrix for terminal previews of point clouds.
type Canvas struct {
	Width, Height int
	cells         []rune
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, cells: make([]rune, width*height)}
	c.Clear()
	return c
}

// DotWidth and DotHeight are the canvas dimensions in sub-pixels.
func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at sub-pixel (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row*c.Width+col] |= dotBits[y%4][x%2]
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
}

// PlotTrajectory scatters every finite point of t inside b onto the
// canvas. Sub-pixel y grows downward, so map y is flipped.
func (c *Canvas) PlotTrajectory(t *dynamo.Trajectory, b dynamo.Bounds) {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return
	}
	dw, dh := float64(c.DotWidth()), float64(c.DotHeight())

	for i := range t.X {
		x, y := t.X[i], t.Y[i]
		if !b.Contains(x, y) {
			continue
		}
		px := int((x - b.XMin) / w * (dw - 1))
		py := int(dh-1) - int((y-b.YMin)/h*(dh-1))
		c.Set(px, py)
	}
}

// PlotGrid lights every dot whose density cell meets the intensity
// threshold. The grid should be sized DotWidth x DotHeight; cells are
// sampled proportionally otherwise.
func (c *Canvas) PlotGrid(g *raster.Grid, intensity []float64, threshold float64) {
	dw, dh := c.DotWidth(), c.DotHeight()
	for y := 0; y < dh; y++ {
		gy := y * g.Height / dh
		for x := 0; x < dw; x++ {
			gx := x * g.Width / dw
			if intensity[gy*g.Width+gx] >= threshold {
				c.Set(x, y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.Width*3 + 1) * c.Height)
	for row := 0; row < c.Height; row++ {
		b.WriteString(string(c.cells[row*c.Width : (row+1)*c.Width]))
		b.WriteByte('\n')
	}
	return b.String()
}
