package attractor

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/strange/internal/dynamo"
)

func TestCliffordStep(t *testing.T) {
	c := &Clifford{A: -1.4, B: 1.6, C: 1.0, D: 0.7}

	x, y := c.Step(0.5, -0.25)
	wantX := math.Sin(-1.4*-0.25) + 1.0*math.Cos(-1.4*0.5)
	wantY := math.Sin(1.6*0.5) + 0.7*math.Cos(1.6*-0.25)

	if math.Abs(x-wantX) > 1e-15 {
		t.Errorf("x = %v, want %v", x, wantX)
	}
	if math.Abs(y-wantY) > 1e-15 {
		t.Errorf("y = %v, want %v", y, wantY)
	}
}

func TestCliffordFixedPointAtZero(t *testing.T) {
	c := &Clifford{}
	x, y := c.Step(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("zero coefficients should fix the origin, got (%v, %v)", x, y)
	}
}

func TestCliffordCoeffs(t *testing.T) {
	c := NewClifford()

	coeffs := c.Coeffs()
	for _, name := range []string{"a", "b", "c", "d"} {
		if _, ok := coeffs[name]; !ok {
			t.Errorf("missing coefficient %q", name)
		}
	}

	if err := c.SetCoeff("c", 0.6); err != nil {
		t.Fatal(err)
	}
	if c.C != 0.6 {
		t.Errorf("SetCoeff did not apply: C = %v", c.C)
	}

	err := c.SetCoeff("sigma", 1.0)
	if !errors.Is(err, dynamo.ErrUnknownCoeff) {
		t.Errorf("expected ErrUnknownCoeff, got %v", err)
	}
}

func TestCliffordOrbitBounded(t *testing.T) {
	c := NewClifford()
	limit := 1 + math.Abs(c.C)
	if l := 1 + math.Abs(c.D); l > limit {
		limit = l
	}

	x, y := c.DefaultStart()
	for i := 0; i < 10_000; i++ {
		x, y = c.Step(x, y)
		if math.Abs(x) > limit || math.Abs(y) > limit {
			t.Fatalf("orbit escaped at step %d: (%v, %v)", i, x, y)
		}
	}
}
