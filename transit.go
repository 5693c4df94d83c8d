package ghatika

import (
	"time"

	"github.com/svemuri/ghatika/internal/solver"
)

// MeridianTransit finds the instant of maximum altitude for star within the
// window: a coarse scan of the window picks the neighborhood of the
// maximum, then ternary search narrows it to a second.
//
// The altitude of a fixed-declination object over one day is unimodal
// around its transit, which is what the refinement relies on; behavior for
// fast-moving bodies (planets, the Moon) is undefined. A maximum always
// exists on a closed window, so there is no "not found" state — only
// ErrInvalidWindow or a provider failure.
func MeridianTransit(loc Coordinates, star Star, w Window) (time.Time, error) {
	at, err := solver.FindMaximum(starAltitude(loc, star), w.Start, w.End, crossingSteps, eventTol)
	if err != nil {
		return time.Time{}, err
	}
	return at.In(w.Start.Location()), nil
}

// MeridianTransitOn is MeridianTransit over the local calendar day of date.
func MeridianTransitOn(loc Coordinates, star Star, date time.Time) (time.Time, error) {
	return MeridianTransit(loc, star, DayWindow(date))
}
