// Package ephem wraps the learnmeeus astronomical library behind a few
// pure functions: (location, target, instant) in, altitude/azimuth or
// sidereal time out. The solvers sample these thousands of times per
// computation, so nothing here allocates per call beyond the library's
// own arithmetic and nothing is cached between calls.
//
// Conventions at this boundary: latitude north-positive, longitude
// east-positive, altitude/azimuth in degrees with azimuth measured from
// north through east. Meeus uses west-positive longitudes and azimuths
// from south, so both are converted here and nowhere else.
package ephem

import (
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/svemuri/ghatika/internal/timeutil"
)

// The solar and sidereal series are only trustworthy within a few
// millennia of J2000; reject instants outside a generous range instead
// of returning quietly wrong positions.
const (
	minYear = 1000
	maxYear = 3000
)

// SunAltAz returns the Sun's topocentric-enough altitude and azimuth in
// degrees for an observer at lat, lon at time t.
func SunAltAz(lat, lon float64, t time.Time) (alt, az float64, err error) {
	if err := validate(lat, lon, t); err != nil {
		return 0, 0, err
	}
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	return toHorizontal(lat, lon, ra, dec, jd)
}

// StarAltAz returns the altitude and azimuth in degrees of a fixed object
// with the given right ascension (hours) and declination (degrees), for an
// observer at lat, lon at time t.
func StarAltAz(lat, lon, raHours, decDeg float64, t time.Time) (alt, az float64, err error) {
	if err := validate(lat, lon, t); err != nil {
		return 0, 0, err
	}
	if raHours < 0 || raHours >= 24 || math.IsNaN(raHours) {
		return 0, 0, fmt.Errorf("right ascension %v hours out of range [0, 24)", raHours)
	}
	if decDeg < -90 || decDeg > 90 || math.IsNaN(decDeg) {
		return 0, 0, fmt.Errorf("declination %v out of range [-90, 90]", decDeg)
	}
	jd := julian.TimeToJD(t.UTC())
	ra := unit.RAFromHour(raHours)
	dec := unit.AngleFromDeg(decDeg)
	return toHorizontal(lat, lon, ra, dec, jd)
}

// SiderealHours returns the local apparent sidereal time in hours [0, 24)
// for an observer at east-positive longitude lon at time t.
func SiderealHours(lon float64, t time.Time) (float64, error) {
	if err := validate(0, lon, t); err != nil {
		return 0, err
	}
	jd := julian.TimeToJD(t.UTC())
	gst := sidereal.Apparent(jd)
	return timeutil.Normalize24(gst.Hour() + lon/15.0), nil
}

func toHorizontal(lat, lon float64, ra unit.RA, dec unit.Angle, jd float64) (alt, az float64, err error) {
	st := sidereal.Apparent(jd)
	phi := unit.AngleFromDeg(lat)
	psi := unit.AngleFromDeg(-lon) // Meeus wants west-positive
	A, h := coord.EqToHz(ra, dec, phi, psi, st)

	alt = timeutil.ClampAlt(h.Deg())
	az = timeutil.Normalize360(A.Deg() + 180.0) // Meeus azimuth is from south
	return alt, az, nil
}

func validate(lat, lon float64, t time.Time) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	if y := t.UTC().Year(); y < minYear || y > maxYear {
		return fmt.Errorf("time %v outside supported range (years %d-%d)", t, minYear, maxYear)
	}
	return nil
}
