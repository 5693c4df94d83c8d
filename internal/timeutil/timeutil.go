// Package timeutil holds small angle- and hour-wrapping helpers shared by
// the ephemeris provider and the solvers.
package timeutil

import "math"

// Normalize360 wraps a value in degrees into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Normalize24 wraps a value in hours into [0, 24).
func Normalize24(h float64) float64 {
	h = math.Mod(h, 24.0)
	if h < 0 {
		h += 24.0
	}
	return h
}

// WrapDeg180 wraps a difference in degrees into [-180, 180).
// Useful for comparing azimuths across the 0/360 seam.
func WrapDeg180(d float64) float64 {
	d = math.Mod(d+180.0, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d - 180.0
}

// WrapHours12 wraps a difference in hours into [-12, 12).
// Useful for comparing sidereal times across the 0/24 seam.
func WrapHours12(h float64) float64 {
	h = math.Mod(h+12.0, 24.0)
	if h < 0 {
		h += 24.0
	}
	return h - 12.0
}

// ClampAlt clamps an altitude in degrees to [-90, 90].
func ClampAlt(alt float64) float64 {
	if alt < -90 {
		return -90
	}
	if alt > 90 {
		return 90
	}
	return alt
}
