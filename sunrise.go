package ghatika

import (
	"time"

	"github.com/svemuri/ghatika/internal/solver"
)

// ApparentSunriseAltitude is the altitude (in degrees) of the Sun's center
// when the apparent upper limb is on the horizon under standard conditions:
// atmospheric refraction plus the solar disk radius, commonly -0.833°.
const ApparentSunriseAltitude = -0.833

const (
	// crossingSteps samples the day every 5 minutes when bracketing.
	crossingSteps = 289
	// eventTol is how tightly bisection/ternary search narrow an event time.
	eventTol = time.Second
)

// SunriseResult reports a sunrise (or sunset) search. OK is false when the
// Sun never crosses the threshold in the window — polar day or night — so
// "no sunrise" is an explicit state, never a default instant.
type SunriseResult struct {
	Time time.Time `json:"time"`
	OK   bool      `json:"found"`
}

// FindSunrise finds the time the Sun's altitude rises through
// ApparentSunriseAltitude on the local calendar day of date. The returned
// time is in date's time zone.
func FindSunrise(loc Coordinates, date time.Time) (SunriseResult, error) {
	return FindSunriseAt(loc, date, ApparentSunriseAltitude)
}

// FindSunriseAt is FindSunrise with a configurable altitude threshold,
// e.g. -6° for civil dawn or -18° for astronomical dawn.
func FindSunriseAt(loc Coordinates, date time.Time, thresholdDeg float64) (SunriseResult, error) {
	return sunCrossing(loc, date, thresholdDeg, solver.CrossingUp)
}

// FindSunset finds the downward crossing of ApparentSunriseAltitude on the
// local calendar day of date.
func FindSunset(loc Coordinates, date time.Time) (SunriseResult, error) {
	return FindSunsetAt(loc, date, ApparentSunriseAltitude)
}

// FindSunsetAt is FindSunset with a configurable altitude threshold.
func FindSunsetAt(loc Coordinates, date time.Time, thresholdDeg float64) (SunriseResult, error) {
	return sunCrossing(loc, date, thresholdDeg, solver.CrossingDown)
}

func sunCrossing(loc Coordinates, date time.Time, thresholdDeg float64, dir solver.Crossing) (SunriseResult, error) {
	w := DayWindow(date)
	ev, err := solver.FindCrossing(sunAltitude(loc), w.Start, w.End, thresholdDeg, dir, crossingSteps, eventTol)
	if err != nil {
		return SunriseResult{}, err
	}
	if !ev.OK {
		return SunriseResult{OK: false}, nil
	}
	return SunriseResult{Time: ev.Time.In(date.Location()), OK: true}, nil
}

// DaylightHours returns the duration between sunrise and sunset on the
// given date, in hours. ErrNoSunrise is returned when either event is
// missing (polar conditions).
func DaylightHours(loc Coordinates, date time.Time) (float64, error) {
	rise, err := FindSunrise(loc, date)
	if err != nil {
		return 0, err
	}
	set, err := FindSunset(loc, date)
	if err != nil {
		return 0, err
	}
	if !rise.OK || !set.OK {
		return 0, ErrNoSunrise
	}
	return set.Time.Sub(rise.Time).Hours(), nil
}
