package dynamo

import (
	"errors"
	"fmt"
	"math"
)

// Map is a 2D discrete dynamical system: one application of Step advances
// the state by a single iteration.
type Map interface {
	Name() string
	Step(x, y float64) (float64, float64)
}

// Configurable maps expose their coefficients for runtime adjustment.
type Configurable interface {
	Coeffs() map[string]float64
	SetCoeff(name string, value float64) error
}

// Starter maps suggest an initial position known to land on the attractor.
type Starter interface {
	DefaultStart() (x, y float64)
}

var (
	ErrInvalidCount = errors.New("sample count must be at least 1")
	ErrUnknownCoeff = errors.New("unknown coefficient")
)

// CountError reports a rejected sample count.
type CountError struct {
	N int
}

func (e CountError) Error() string {
	return fmt.Sprintf("invalid sample count %d: %v", e.N, ErrInvalidCount)
}

func (e CountError) Unwrap() error { return ErrInvalidCount }

// Bounds is an axis-aligned rectangle in map coordinates.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (b Bounds) Width() float64  { return b.XMax - b.XMin }
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Contains reports whether (x, y) lies inside the rectangle.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Pad grows the rectangle by frac of its extent on every side.
func (b Bounds) Pad(frac float64) Bounds {
	dx := b.Width() * frac
	dy := b.Height() * frac
	if dx == 0 {
		dx = frac
	}
	if dy == 0 {
		dy = frac
	}
	return Bounds{b.XMin - dx, b.XMax + dx, b.YMin - dy, b.YMax + dy}
}

// Trajectory holds the visited positions of one generation run as two flat
// columns. Both slices always have equal length.
type Trajectory struct {
	X []float64
	Y []float64
}

func (t *Trajectory) Len() int { return len(t.X) }

// Points returns the column-name interchange form consumed by the
// rasterizer and exporters.
func (t *Trajectory) Points() map[string][]float64 {
	return map[string][]float64{"x": t.X, "y": t.Y}
}

// IsFinite reports whether every stored position is finite.
func (t *Trajectory) IsFinite() bool {
	for i := range t.X {
		if !finite(t.X[i]) || !finite(t.Y[i]) {
			return false
		}
	}
	return true
}

// Bounds returns the tight bounding box of all finite positions. A
// trajectory with no finite points yields the zero rectangle.
func (t *Trajectory) Bounds() Bounds {
	first := true
	var b Bounds
	for i := range t.X {
		x, y := t.X[i], t.Y[i]
		if !finite(x) || !finite(y) {
			continue
		}
		if first {
			b = Bounds{x, x, y, y}
			first = false
			continue
		}
		if x < b.XMin {
			b.XMin = x
		}
		if x > b.XMax {
			b.XMax = x
		}
		if y < b.YMin {
			b.YMin = y
		}
		if y > b.YMax {
			b.YMax = y
		}
	}
	return b
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
