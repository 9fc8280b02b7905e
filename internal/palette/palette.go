package palette

import "image/color"

// Palette is a named color ramp. At interpolates linearly between stops.
type Palette struct {
	Name  string
	Stops []color.NRGBA
}

// At returns the ramp color for t in [0, 1]; t is clamped.
func (p Palette) At(t float64) color.NRGBA {
	if len(p.Stops) == 0 {
		return color.NRGBA{A: 0xff}
	}
	if len(p.Stops) == 1 || t <= 0 {
		return p.Stops[0]
	}
	if t >= 1 {
		return p.Stops[len(p.Stops)-1]
	}

	pos := t * float64(len(p.Stops)-1)
	i := int(pos)
	frac := pos - float64(i)

	a, b := p.Stops[i], p.Stops[i+1]
	return color.NRGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 0xff,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 0xff} }

// Named ramps, approximating the perceptually uniform colormaps the
// attractor renderings traditionally use.
var (
	Fire = Palette{
		Name: "fire",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x00), rgb(0x60, 0x00, 0x00), rgb(0xb0, 0x20, 0x00),
			rgb(0xe8, 0x6a, 0x00), rgb(0xff, 0xb0, 0x00), rgb(0xff, 0xf0, 0xa0),
			rgb(0xff, 0xff, 0xff),
		},
	}

	BGY = Palette{
		Name: "bgy",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x66), rgb(0x00, 0x47, 0x87), rgb(0x00, 0x78, 0x73),
			rgb(0x1c, 0xa8, 0x38), rgb(0x9b, 0xd1, 0x00), rgb(0xff, 0xf8, 0x00),
		},
	}

	BMW = Palette{
		Name: "bmw",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x66), rgb(0x46, 0x0f, 0xb0), rgb(0xa0, 0x24, 0xe0),
			rgb(0xf0, 0x60, 0xf0), rgb(0xff, 0xc0, 0xff), rgb(0xff, 0xff, 0xff),
		},
	}

	BMY = Palette{
		Name: "bmy",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x66), rgb(0x78, 0x10, 0xa8), rgb(0xc8, 0x2c, 0x90),
			rgb(0xf8, 0x6c, 0x50), rgb(0xff, 0xb0, 0x20), rgb(0xff, 0xf0, 0x20),
		},
	}

	KBC = Palette{
		Name: "kbc",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x00), rgb(0x10, 0x20, 0x70), rgb(0x20, 0x50, 0xb8),
			rgb(0x30, 0x88, 0xe0), rgb(0x50, 0xc0, 0xf8), rgb(0xa0, 0xf0, 0xff),
		},
	}

	KGY = Palette{
		Name: "kgy",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x00), rgb(0x0a, 0x38, 0x0a), rgb(0x1e, 0x6e, 0x0f),
			rgb(0x52, 0xa8, 0x14), rgb(0xa0, 0xd8, 0x30), rgb(0xf0, 0xff, 0x70),
		},
	}

	Gray = Palette{
		Name: "gray",
		Stops: []color.NRGBA{
			rgb(0x00, 0x00, 0x00), rgb(0xff, 0xff, 0xff),
		},
	}

	Viridis = Palette{
		Name: "viridis",
		Stops: []color.NRGBA{
			rgb(0x44, 0x01, 0x54), rgb(0x3b, 0x52, 0x8b), rgb(0x21, 0x91, 0x8c),
			rgb(0x5e, 0xc9, 0x62), rgb(0xfd, 0xe7, 0x25),
		},
	}

	// All available ramps
	Palettes = []Palette{Fire, BGY, BMW, BMY, KBC, KGY, Gray, Viridis}
)

// Get returns a ramp by name, falling back to fire for unknown names.
func Get(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Fire
}

// Names returns the list of available ramp names.
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}
