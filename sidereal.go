package ghatika

import (
	"fmt"
	"time"

	"github.com/svemuri/ghatika/internal/solver"
	"github.com/svemuri/ghatika/internal/timeutil"
)

// SiderealTime returns the local apparent sidereal time in hours [0, 24)
// for the observer at time t.
func SiderealTime(loc Coordinates, t time.Time) (float64, error) {
	return DefaultProvider.SiderealHours(loc, t)
}

// TimeForSidereal finds the instant within ±12 h of around at which the
// observer's local sidereal time equals targetHours. The difference,
// wrapped to [-12, 12), increases monotonically through zero exactly once
// in that span (sidereal time gains ~4 minutes per civil day), so a single
// upward crossing locates it.
func TimeForSidereal(loc Coordinates, targetHours float64, around time.Time) (time.Time, error) {
	diff := func(t time.Time) (float64, error) {
		lst, err := DefaultProvider.SiderealHours(loc, t)
		if err != nil {
			return 0, err
		}
		return timeutil.WrapHours12(lst - targetHours), nil
	}

	start := around.Add(-12 * time.Hour)
	end := around.Add(12 * time.Hour)
	ev, err := solver.FindCrossing(diff, start, end, 0, solver.CrossingUp, crossingSteps, eventTol)
	if err != nil {
		return time.Time{}, err
	}
	if !ev.OK {
		// The wrapped difference always crosses zero in a 24 h span.
		return time.Time{}, fmt.Errorf("no sidereal match for %.4f h around %v", targetHours, around)
	}
	return ev.Time.In(around.Location()), nil
}
