// Package solver implements the iterative time-domain searches used by the
// public API: bracket-then-bisect for altitude crossings (sunrise, sunset,
// twilight-style thresholds), ternary search for the altitude maximum
// (meridian transit), and a multi-candidate minimizer for matching an
// observed alt/az position.
//
// Every search samples an ObjectiveFunc over a bounded window. The function
// may fail (the ephemeris provider rejects an instant); a failure aborts the
// whole search rather than skipping the sample, since a gap could hide a
// real crossing.
package solver

import (
	"errors"
	"time"
)

// ObjectiveFunc evaluates some quantity (altitude in degrees, an error
// metric, ...) at time t.
type ObjectiveFunc func(t time.Time) (float64, error)

// Crossing describes the direction of a threshold crossing.
type Crossing int

const (
	// CrossingUp means the value is increasing through the target (rise).
	CrossingUp Crossing = iota
	// CrossingDown means the value is decreasing through the target (set).
	CrossingDown
)

// Event holds the result of a crossing search.
type Event struct {
	Time time.Time // approximate time of the event
	OK   bool      // true if an event was found in the window
}

// ErrInvalidWindow is returned when a search window has start >= end.
var ErrInvalidWindow = errors.New("invalid window: start must be before end")

// FindCrossing searches [start, end] for a time where f crosses target in
// the given direction. It samples a coarse grid of steps points to bracket
// the sign change of f(t)-target, then bisects the first bracket down to
// tol. Event.OK is false when no bracket exists anywhere on the grid
// (e.g. polar day or night for a sunrise search).
func FindCrossing(f ObjectiveFunc, start, end time.Time, target float64, dir Crossing, steps int, tol time.Duration) (Event, error) {
	if !start.Before(end) {
		return Event{}, ErrInvalidWindow
	}
	if steps < 2 {
		steps = 2
	}

	interval := end.Sub(start) / time.Duration(steps-1)

	prevT := start
	prevV, err := f(prevT)
	if err != nil {
		return Event{}, err
	}
	prevV -= target

	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		if i == steps-1 {
			t = end // avoid drift past the window on the last step
		}
		v, err := f(t)
		if err != nil {
			return Event{}, err
		}
		v -= target

		if hasCrossing(prevV, v, dir) {
			return bisect(f, prevT, t, target, dir, tol)
		}
		prevT, prevV = t, v
	}

	return Event{OK: false}, nil
}

func hasCrossing(a, b float64, dir Crossing) bool {
	switch dir {
	case CrossingUp:
		return a < 0 && b >= 0
	case CrossingDown:
		return a > 0 && b <= 0
	default:
		return a*b <= 0
	}
}

// bisect repeatedly halves [a, b], keeping the half whose endpoints still
// bracket the crossing, until the interval is narrower than tol. The
// midpoint of the final interval is reported as the event time.
func bisect(f ObjectiveFunc, a, b time.Time, target float64, dir Crossing, tol time.Duration) (Event, error) {
	va, err := f(a)
	if err != nil {
		return Event{}, err
	}
	va -= target
	vb, err := f(b)
	if err != nil {
		return Event{}, err
	}
	vb -= target

	if !hasCrossing(va, vb, dir) {
		return Event{OK: false}, nil
	}

	const maxIter = 64
	for i := 0; b.Sub(a) > tol && i < maxIter; i++ {
		mid := a.Add(b.Sub(a) / 2)
		vm, err := f(mid)
		if err != nil {
			return Event{}, err
		}
		vm -= target

		if hasCrossing(va, vm, dir) {
			b, vb = mid, vm
		} else {
			a, va = mid, vm
		}
	}

	return Event{Time: a.Add(b.Sub(a) / 2), OK: true}, nil
}
