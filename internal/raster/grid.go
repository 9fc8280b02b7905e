package raster

import (
	"math"

	"github.com/san-kum/strange/internal/dynamo"
)

// Grid is a fixed-resolution density histogram over a rectangle in map
// coordinates. Counts is row-major, Counts[y*Width+x].
type Grid struct {
	Width, Height int
	Counts        []uint32
}

func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		Width:  width,
		Height: height,
		Counts: make([]uint32, width*height),
	}
}

// Accumulate bins every finite trajectory point inside b into the grid.
// Points outside the bounds are dropped. The right/top edges map into the
// last row and column so the bounds are fully closed.
func (g *Grid) Accumulate(t *dynamo.Trajectory, b dynamo.Bounds) {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return
	}
	sx := float64(g.Width) / w
	sy := float64(g.Height) / h

	for i := range t.X {
		x, y := t.X[i], t.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || !b.Contains(x, y) {
			continue
		}
		px := int((x - b.XMin) * sx)
		py := int((y - b.YMin) * sy)
		if px == g.Width {
			px = g.Width - 1
		}
		if py == g.Height {
			py = g.Height - 1
		}
		// image origin is top-left, map origin bottom-left
		g.Counts[(g.Height-1-py)*g.Width+px]++
	}
}

// At returns the count of cell (x, y) in image coordinates.
func (g *Grid) At(x, y int) uint32 {
	return g.Counts[y*g.Width+x]
}

// MaxCount returns the largest cell count.
func (g *Grid) MaxCount() uint32 {
	var max uint32
	for _, c := range g.Counts {
		if c > max {
			max = c
		}
	}
	return max
}

// Occupancy returns the fraction of cells hit at least once.
func (g *Grid) Occupancy() float64 {
	hit := 0
	for _, c := range g.Counts {
		if c > 0 {
			hit++
		}
	}
	return float64(hit) / float64(len(g.Counts))
}

// Clear zeroes all counts for reuse.
func (g *Grid) Clear() {
	for i := range g.Counts {
		g.Counts[i] = 0
	}
}
