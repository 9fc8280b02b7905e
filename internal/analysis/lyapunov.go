package analysis

import (
	"math"

	"github.com/san-kum/strange/internal/dynamo"
)

// LargestLyapunov estimates the largest Lyapunov exponent of a discrete
// map by tracking the separation of two nearby orbits, renormalizing after
// every step so the perturbation stays infinitesimal. A positive value
// indicates chaotic stretching; the transient iterations are discarded
// before measurement begins.
func LargestLyapunov(m dynamo.Map, x0, y0 float64, steps int, perturbation float64) float64 {
	if steps < 1 || perturbation <= 0 {
		return 0
	}

	const transient = 100

	x, y := x0, y0
	for i := 0; i < transient; i++ {
		x, y = m.Step(x, y)
	}

	xp, yp := x+perturbation, y
	d0 := perturbation

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		x, y = m.Step(x, y)
		xp, yp = m.Step(xp, yp)

		dx, dy := xp-x, yp-y
		sep := math.Sqrt(dx*dx + dy*dy)
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}

		sumLog += math.Log(sep / d0)
		count++

		// pull the shadow orbit back to distance d0 along the separation
		scale := d0 / sep
		xp = x + dx*scale
		yp = y + dy*scale
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}
