package attractor

import (
	"fmt"
	"math"

	"github.com/san-kum/strange/internal/dynamo"
)

// Svensson is Johnny Svensson's variant of the de Jong map:
//
//	x' = d*sin(a*x) - sin(b*y)
//	y' = c*cos(a*x) + cos(b*y)
type Svensson struct {
	A, B, C, D float64
}

func NewSvensson() *Svensson { return &Svensson{1.40, 1.56, 1.40, -6.56} }

func (s *Svensson) Name() string { return "svensson" }

func (s *Svensson) Step(x, y float64) (float64, float64) {
	return s.D*math.Sin(s.A*x) - math.Sin(s.B*y),
		s.C*math.Cos(s.A*x) + math.Cos(s.B*y)
}

func (s *Svensson) DefaultStart() (float64, float64) { return 0, 0 }

func (s *Svensson) Coeffs() map[string]float64 {
	return map[string]float64{"a": s.A, "b": s.B, "c": s.C, "d": s.D}
}

func (s *Svensson) SetCoeff(name string, v float64) error {
	switch name {
	case "a":
		s.A = v
	case "b":
		s.B = v
	case "c":
		s.C = v
	case "d":
		s.D = v
	default:
		return fmt.Errorf("svensson: %w: %s", dynamo.ErrUnknownCoeff, name)
	}
	return nil
}
