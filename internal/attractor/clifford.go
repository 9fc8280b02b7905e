package attractor

import (
	"fmt"
	"math"

	"github.com/san-kum/strange/internal/dynamo"
)

// Clifford is the Clifford attractor map:
//
//	x' = sin(a*y) + c*cos(a*x)
//	y' = sin(b*x) + d*cos(b*y)
//
// For finite coefficients each output component is a sum of a bounded sine
// and cosine term, so the orbit stays inside [-1-|c|, 1+|c|] x
// [-1-|d|, 1+|d|]. No clamping is applied.
type Clifford struct {
	A, B, C, D float64
}

// NewClifford returns the classic swirl at (-1.3, -1.3, -1.8, -1.9).
func NewClifford() *Clifford { return &Clifford{-1.3, -1.3, -1.8, -1.9} }

func (c *Clifford) Name() string { return "clifford" }

func (c *Clifford) Step(x, y float64) (float64, float64) {
	return math.Sin(c.A*y) + c.C*math.Cos(c.A*x),
		math.Sin(c.B*x) + c.D*math.Cos(c.B*y)
}

func (c *Clifford) DefaultStart() (float64, float64) { return 0, 0 }

func (c *Clifford) Coeffs() map[string]float64 {
	return map[string]float64{"a": c.A, "b": c.B, "c": c.C, "d": c.D}
}

func (c *Clifford) SetCoeff(name string, v float64) error {
	switch name {
	case "a":
		c.A = v
	case "b":
		c.B = v
	case "c":
		c.C = v
	case "d":
		c.D = v
	default:
		return fmt.Errorf("clifford: %w: %s", dynamo.ErrUnknownCoeff, name)
	}
	return nil
}
