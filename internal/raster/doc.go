// Package raster turns trajectories into images by density aggregation:
// points are binned into a fixed-resolution [Grid], a [Shader] compresses
// the count distribution into intensities, and [Render] colors the result
// through a palette. Shading modes trade off how visible sparse filaments
// are next to dense cores; eq_hist is the default.
package raster
