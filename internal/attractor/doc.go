// Package attractor provides the catalogue of iterated 2D maps.
//
// Each map implements [dynamo.Map], defining one step of the recurrence
// that traces the attractor:
//
//   - [Clifford]: the Clifford attractor, four trig coefficients
//   - [DeJong]: Peter de Jong's map, bounded to [-2, 2]
//   - [Svensson]: Svensson's de Jong variant
//
// All maps also implement [dynamo.Configurable] for runtime coefficient
// adjustment and [dynamo.Starter] for a sensible initial position. Use
// [Lookup] to construct a map by name.
package attractor
