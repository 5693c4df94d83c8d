package ghatika

import (
	"math"
	"time"

	"github.com/svemuri/ghatika/internal/solver"
	"github.com/svemuri/ghatika/internal/timeutil"
)

// SolveAltitude finds every instant in the window at which star's altitude
// matches targetAlt within tolDeg. Altitude over a day rises and falls, so
// there are typically zero, one or two matches (morning and evening
// crossings); all are returned, sorted. A target above the star's maximum
// altitude for the window yields an empty slice and a nil error —
// unreachable is a result, not a failure.
func SolveAltitude(loc Coordinates, star Star, targetAlt float64, w Window, tolDeg float64) ([]time.Time, error) {
	residual := func(t time.Time) (float64, error) {
		pos, err := DefaultProvider.StarAltAz(loc, star, t)
		if err != nil {
			return 0, err
		}
		return math.Abs(pos.Alt - targetAlt), nil
	}
	return solveResidual(residual, w, tolDeg)
}

// SolvePosition finds the instants at which star's observed position
// matches target in both altitude and azimuth, within tolDeg of combined
// angular residual. The azimuth difference is wrapped across the 0/360
// seam and combined with the altitude difference as a Euclidean norm.
func SolvePosition(loc Coordinates, star Star, target AltAz, w Window, tolDeg float64) ([]time.Time, error) {
	residual := func(t time.Time) (float64, error) {
		pos, err := DefaultProvider.StarAltAz(loc, star, t)
		if err != nil {
			return 0, err
		}
		dAlt := pos.Alt - target.Alt
		dAz := timeutil.WrapDeg180(pos.Az - target.Az)
		return math.Hypot(dAlt, dAz), nil
	}
	return solveResidual(residual, w, tolDeg)
}

func solveResidual(residual solver.ObjectiveFunc, w Window, tolDeg float64) ([]time.Time, error) {
	matches, err := solver.FindMatches(residual, w.Start, w.End, tolDeg, crossingSteps, eventTol)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Time.In(w.Start.Location()))
	}
	return out, nil
}
