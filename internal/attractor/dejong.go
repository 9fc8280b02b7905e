package attractor

import (
	"fmt"
	"math"

	"github.com/san-kum/strange/internal/dynamo"
)

// DeJong is the Peter de Jong attractor map:
//
//	x' = sin(a*y) - cos(b*x)
//	y' = sin(c*x) - cos(d*y)
//
// The orbit is confined to [-2, 2] in both axes for any coefficients.
type DeJong struct {
	A, B, C, D float64
}

func NewDeJong() *DeJong { return &DeJong{-1.244, -1.251, -1.815, -1.908} }

func (d *DeJong) Name() string { return "dejong" }

func (d *DeJong) Step(x, y float64) (float64, float64) {
	return math.Sin(d.A*y) - math.Cos(d.B*x),
		math.Sin(d.C*x) - math.Cos(d.D*y)
}

func (d *DeJong) DefaultStart() (float64, float64) { return 0, 0 }

func (d *DeJong) Coeffs() map[string]float64 {
	return map[string]float64{"a": d.A, "b": d.B, "c": d.C, "d": d.D}
}

func (d *DeJong) SetCoeff(name string, v float64) error {
	switch name {
	case "a":
		d.A = v
	case "b":
		d.B = v
	case "c":
		d.C = v
	case "d":
		d.D = v
	default:
		return fmt.Errorf("dejong: %w: %s", dynamo.ErrUnknownCoeff, name)
	}
	return nil
}
