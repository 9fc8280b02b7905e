package config

// Presets are coefficient sets known to produce well-formed attractors.
// Samples, image size, palette and shading fall back to the defaults when
// a preset leaves them zero-valued.
var Presets = map[string]map[string]*Config{
	"clifford": {
		"swirl": {
			Map: "clifford", Coeffs: CoeffConfig{A: -1.3, B: -1.3, C: -1.8, D: -1.9},
			Palette: "bgy",
		},
		"bloom": {
			Map: "clifford", Coeffs: CoeffConfig{A: -1.4, B: 1.6, C: 1.0, D: 0.7},
			Palette: "bmw",
		},
		"rings": {
			Map: "clifford", Coeffs: CoeffConfig{A: 1.7, B: 1.7, C: 0.6, D: 1.2},
			Palette: "bmy",
		},
		"bird": {
			Map: "clifford", Coeffs: CoeffConfig{A: 1.5, B: -1.8, C: 1.6, D: 0.9},
			Palette: "fire",
		},
		"tangle": {
			Map: "clifford", Coeffs: CoeffConfig{A: -1.7, B: 1.3, C: -0.1, D: -1.21},
			Palette: "kgy",
		},
		"veil": {
			Map: "clifford", Coeffs: CoeffConfig{A: -1.7, B: -0.3, C: -0.5, D: 0.7},
			Palette: "kbc",
		},
	},
	"dejong": {
		"classic": {
			Map: "dejong", Coeffs: CoeffConfig{A: -1.244, B: -1.251, C: -1.815, D: -1.908},
			Palette: "fire",
		},
		"web": {
			Map: "dejong", Coeffs: CoeffConfig{A: 1.7, B: 1.7, C: 0.6, D: 1.2},
			Palette: "bgy",
		},
		"pinwheel": {
			Map: "dejong", Coeffs: CoeffConfig{A: -2.0, B: -2.0, C: -1.2, D: 2.0},
			Palette: "viridis",
		},
	},
	"svensson": {
		"ribbon": {
			Map: "svensson", Coeffs: CoeffConfig{A: 1.40, B: 1.56, C: 1.40, D: -6.56},
			Palette: "bmw",
		},
		"moth": {
			Map: "svensson", Coeffs: CoeffConfig{A: -1.78, B: 1.29, C: -0.09, D: -1.18},
			Palette: "kbc",
		},
	},
}

// GetPreset returns the named preset with defaults filled in, or nil if
// either the map or the preset is unknown.
func GetPreset(mapName, preset string) *Config {
	mapPresets, ok := Presets[mapName]
	if !ok {
		return nil
	}
	cfg, ok := mapPresets[preset]
	if !ok {
		return nil
	}
	out := *cfg
	if out.Samples == 0 {
		out.Samples = DefaultSamples
	}
	if out.Width == 0 {
		out.Width = DefaultWidth
	}
	if out.Height == 0 {
		out.Height = DefaultHeight
	}
	if out.Palette == "" {
		out.Palette = DefaultPalette
	}
	if out.Shading == "" {
		out.Shading = DefaultShading
	}
	if out.Background == "" {
		out.Background = "#000000"
	}
	return &out
}

// ListPresets returns preset names for a map, or nil for unknown maps.
func ListPresets(mapName string) []string {
	mapPresets, ok := Presets[mapName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(mapPresets))
	for name := range mapPresets {
		names = append(names, name)
	}
	return names
}
