package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/strange/internal/palette"
)

// Shader maps cell counts to intensities in [0, 1]. Empty cells stay at 0.
type Shader func(g *Grid) []float64

// ShadeLinear scales counts linearly against the maximum.
func ShadeLinear(g *Grid) []float64 {
	out := make([]float64, len(g.Counts))
	max := float64(g.MaxCount())
	if max == 0 {
		return out
	}
	for i, c := range g.Counts {
		out[i] = float64(c) / max
	}
	return out
}

// ShadeLog compresses the dynamic range with log1p, which keeps sparse
// filaments visible next to dense cores.
func ShadeLog(g *Grid) []float64 {
	out := make([]float64, len(g.Counts))
	max := math.Log1p(float64(g.MaxCount()))
	if max == 0 {
		return out
	}
	for i, c := range g.Counts {
		if c > 0 {
			out[i] = math.Log1p(float64(c)) / max
		}
	}
	return out
}

// ShadeCbrt applies cube-root compression, a middle ground between linear
// and log.
func ShadeCbrt(g *Grid) []float64 {
	out := make([]float64, len(g.Counts))
	max := math.Cbrt(float64(g.MaxCount()))
	if max == 0 {
		return out
	}
	for i, c := range g.Counts {
		if c > 0 {
			out[i] = math.Cbrt(float64(c)) / max
		}
	}
	return out
}

// ShadeEqHist equalizes the histogram of nonzero counts so every intensity
// band covers roughly the same number of cells. This is the shading that
// makes attractor structure readable regardless of how skewed the density
// distribution is.
func ShadeEqHist(g *Grid) []float64 {
	out := make([]float64, len(g.Counts))

	nonzero := make([]uint32, 0, len(g.Counts))
	for _, c := range g.Counts {
		if c > 0 {
			nonzero = append(nonzero, c)
		}
	}
	if len(nonzero) == 0 {
		return out
	}
	sort.Slice(nonzero, func(i, j int) bool { return nonzero[i] < nonzero[j] })

	n := float64(len(nonzero))
	for i, c := range g.Counts {
		if c == 0 {
			continue
		}
		// rank of the last cell with this count
		rank := sort.Search(len(nonzero), func(k int) bool { return nonzero[k] > c })
		out[i] = float64(rank) / n
	}
	return out
}

var shaders = map[string]Shader{
	"linear":  ShadeLinear,
	"log":     ShadeLog,
	"cbrt":    ShadeCbrt,
	"eq_hist": ShadeEqHist,
}

// ShaderByName resolves a shading mode; eq_hist is the default for the
// empty string.
func ShaderByName(name string) (Shader, error) {
	if name == "" {
		name = "eq_hist"
	}
	s, ok := shaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown shading mode: %s", name)
	}
	return s, nil
}

// ShaderNames lists the registered shading modes in stable order.
func ShaderNames() []string {
	names := make([]string, 0, len(shaders))
	for name := range shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render shades the grid and colors it through the palette. Empty cells
// receive the background color.
func Render(g *Grid, shade Shader, pal palette.Palette, background color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	intensity := shade(g)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			if g.Counts[i] == 0 {
				img.SetNRGBA(x, y, background)
				continue
			}
			img.SetNRGBA(x, y, pal.At(intensity[i]))
		}
	}
	return img
}
