// Package ghatika computes a simulated night sky for an observer location
// and instant, and derives the ancient Indian timekeeping units Ghaṭi,
// Muhūrta and Yāma from sunrise.
//
// The numerical core finds event times by searching a bounded window of
// civil time: sunrise and sunset as refraction-adjusted altitude crossings
// (bisection), meridian transit as the altitude maximum (ternary search),
// and the inverse problem — at what time does a star sit at a given
// alt/az — as a multi-candidate residual minimization.
//
// Coordinate transforms come from a Provider, a narrow pure-function view
// of an astronomical library. The default is backed by learnmeeus
// (Meeus-style ephemeris): apparent solar position, apparent sidereal
// time, and the equatorial-to-horizontal transform.
//
// All computations are synchronous and self-contained; nothing is cached
// between calls.
package ghatika

import (
	"errors"
	"time"

	"github.com/svemuri/ghatika/internal/ephem"
	"github.com/svemuri/ghatika/internal/solver"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat       float64 // degrees, north positive
	Lon       float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
	Elevation float64 // meters above sea level (reserved for future use)
}

// Star is a fixed celestial target. RA/Dec are treated as constant over a
// search window, which is what lets the transit solver assume a unimodal
// altitude curve.
type Star struct {
	Name    string  `json:"name"`
	RAHours float64 `json:"ra_h"`    // right ascension, hours [0, 24)
	DecDeg  float64 `json:"dec_deg"` // declination, degrees
	Mag     float64 `json:"mag"`     // apparent visual magnitude
}

// AltAz is a horizontal-coordinate position.
type AltAz struct {
	Alt float64 `json:"alt_deg"` // degrees above the horizon, [-90, 90]
	Az  float64 `json:"az_deg"`  // degrees from north through east, [0, 360)
}

// Window is the bounded interval of civil time a solver searches.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the window spanning the local calendar day of date,
// midnight to midnight in date's time zone.
func DayWindow(date time.Time) Window {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	return Window{Start: start, End: start.Add(24 * time.Hour)}
}

var (
	// ErrInvalidWindow is returned when a window has Start >= End.
	ErrInvalidWindow = solver.ErrInvalidWindow

	// ErrNoSunrise is returned when a computation needs a sunrise that
	// does not exist on that date at that location (polar day or night).
	ErrNoSunrise = errors.New("sun does not cross the sunrise altitude on this date")

	// ErrUnknownStar is returned when a star name is not in the catalog.
	ErrUnknownStar = errors.New("star not found in catalog")
)

// Provider supplies the coordinate transforms the solvers sample. It must
// behave as a pure function of its arguments and tolerate thousands of
// calls per computation. Implementations report bad input (out-of-range
// coordinates, unsupported dates) as errors; solvers abort and propagate
// rather than skipping samples.
type Provider interface {
	// SunAltAz returns the Sun's position for the observer at time t.
	SunAltAz(loc Coordinates, t time.Time) (AltAz, error)
	// StarAltAz returns star's position for the observer at time t.
	StarAltAz(loc Coordinates, star Star, t time.Time) (AltAz, error)
	// SiderealHours returns local apparent sidereal time in hours [0, 24).
	SiderealHours(loc Coordinates, t time.Time) (float64, error)
}

// MeeusProvider is the learnmeeus-backed Provider used by default.
type MeeusProvider struct{}

func (MeeusProvider) SunAltAz(loc Coordinates, t time.Time) (AltAz, error) {
	alt, az, err := ephem.SunAltAz(loc.Lat, loc.Lon, t)
	if err != nil {
		return AltAz{}, err
	}
	return AltAz{Alt: alt, Az: az}, nil
}

func (MeeusProvider) StarAltAz(loc Coordinates, star Star, t time.Time) (AltAz, error) {
	alt, az, err := ephem.StarAltAz(loc.Lat, loc.Lon, star.RAHours, star.DecDeg, t)
	if err != nil {
		return AltAz{}, err
	}
	return AltAz{Alt: alt, Az: az}, nil
}

func (MeeusProvider) SiderealHours(loc Coordinates, t time.Time) (float64, error) {
	return ephem.SiderealHours(loc.Lon, t)
}

// DefaultProvider backs the package-level functions. Swap it to run the
// solvers against a different ephemeris.
var DefaultProvider Provider = MeeusProvider{}

// sunAltitude adapts the provider's solar position to a solver objective.
func sunAltitude(loc Coordinates) solver.ObjectiveFunc {
	return func(t time.Time) (float64, error) {
		pos, err := DefaultProvider.SunAltAz(loc, t)
		if err != nil {
			return 0, err
		}
		return pos.Alt, nil
	}
}

// starAltitude adapts the provider's star position to a solver objective.
func starAltitude(loc Coordinates, star Star) solver.ObjectiveFunc {
	return func(t time.Time) (float64, error) {
		pos, err := DefaultProvider.StarAltAz(loc, star, t)
		if err != nil {
			return 0, err
		}
		return pos.Alt, nil
	}
}
