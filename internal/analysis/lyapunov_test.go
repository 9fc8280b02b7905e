package analysis

import (
	"testing"

	"github.com/san-kum/strange/internal/attractor"
)

func TestLargestLyapunov_ChaoticClifford(t *testing.T) {
	m := attractor.NewClifford()

	lambda := LargestLyapunov(m, 0, 0, 20_000, 1e-9)
	if lambda <= 0 {
		t.Errorf("classic clifford coefficients should be chaotic, got λ = %f", lambda)
	}
}

func TestLargestLyapunov_FixedPoint(t *testing.T) {
	// all-zero coefficients pin the orbit at the origin; the separation
	// collapses immediately and no stretching is measured
	m := &attractor.Clifford{}

	lambda := LargestLyapunov(m, 0, 0, 1000, 1e-9)
	if lambda > 0 {
		t.Errorf("fixed point reported chaotic: λ = %f", lambda)
	}
}

func TestLargestLyapunov_InvalidArgs(t *testing.T) {
	m := attractor.NewClifford()

	if got := LargestLyapunov(m, 0, 0, 0, 1e-9); got != 0 {
		t.Errorf("zero steps should yield 0, got %f", got)
	}
	if got := LargestLyapunov(m, 0, 0, 100, 0); got != 0 {
		t.Errorf("zero perturbation should yield 0, got %f", got)
	}
}

func TestLargestLyapunov_Deterministic(t *testing.T) {
	m := attractor.NewClifford()

	a := LargestLyapunov(m, 0, 0, 5000, 1e-9)
	b := LargestLyapunov(m, 0, 0, 5000, 1e-9)
	if a != b {
		t.Errorf("repeated estimates differ: %f vs %f", a, b)
	}
}
