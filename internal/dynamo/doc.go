// Package dynamo defines the core types for iterated 2D maps and the
// trajectory generator that drives every renderer in this repository.
//
// A [Map] is a discrete dynamical system: [Generate] applies it n-1 times
// from a starting position and records every visited point in a
// [Trajectory] of two flat float64 columns. Generation is deterministic
// and side-effect free; the caller owns the returned columns exclusively.
//
//	m := attractor.NewClifford()
//	traj, err := dynamo.Generate(m, 0, 0, 1_000_000)
//
// Maps that additionally implement [Configurable] can have their
// coefficients adjusted at runtime, which is how the interactive explorer
// rewires parameters between regenerations.
package dynamo
