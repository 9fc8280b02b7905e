package config

import (
	"fmt"
	"os"

	"github.com/san-kum/strange/internal/attractor"
	"github.com/san-kum/strange/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples = 1_000_000
	DefaultWidth   = 800
	DefaultHeight  = 800
	DefaultPalette = "fire"
	DefaultShading = "eq_hist"
)

type Config struct {
	Map        string      `yaml:"map"`
	Coeffs     CoeffConfig `yaml:"coeffs"`
	Start      StartConfig `yaml:"start"`
	Samples    int         `yaml:"samples"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Palette    string      `yaml:"palette"`
	Shading    string      `yaml:"shading"`
	Background string      `yaml:"background"`
}

type CoeffConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

type StartConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Map:        "clifford",
		Coeffs:     CoeffConfig{A: -1.3, B: -1.3, C: -1.8, D: -1.9},
		Samples:    DefaultSamples,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Palette:    DefaultPalette,
		Shading:    DefaultShading,
		Background: "#000000",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildMap constructs the configured map with its coefficients applied.
func (c *Config) BuildMap() (dynamo.Map, error) {
	m, err := attractor.Lookup(c.Map)
	if err != nil {
		return nil, err
	}
	cfg, ok := m.(dynamo.Configurable)
	if !ok {
		return m, nil
	}
	coeffs := map[string]float64{"a": c.Coeffs.A, "b": c.Coeffs.B, "c": c.Coeffs.C, "d": c.Coeffs.D}
	for name, v := range coeffs {
		if err := cfg.SetCoeff(name, v); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return m, nil
}
