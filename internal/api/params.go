package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/svemuri/ghatika"
	"github.com/svemuri/ghatika/internal/config"
)

// query holds the parsed common request parameters: observer location and
// the instant (or date) the computation is for, already in the requested
// time zone.
type query struct {
	loc ghatika.Coordinates
	at  time.Time
}

// parseQuery reads lat, lon, elev, tz, date and at from the request,
// falling back to the configured default observer. `at` (RFC3339) wins
// over `date` (YYYY-MM-DD, meaning that day's midnight); with neither,
// the current time in the requested zone is used.
func parseQuery(c *gin.Context, cfg *config.Config) (query, error) {
	q := query{
		loc: ghatika.Coordinates{Lat: cfg.DefaultLat, Lon: cfg.DefaultLon},
	}

	var err error
	if q.loc.Lat, err = floatParam(c, "lat", cfg.DefaultLat); err != nil {
		return query{}, err
	}
	if q.loc.Lon, err = floatParam(c, "lon", cfg.DefaultLon); err != nil {
		return query{}, err
	}
	if q.loc.Elevation, err = floatParam(c, "elev", 0); err != nil {
		return query{}, err
	}

	tz := cfg.DefaultTZ
	if name := c.Query("tz"); name != "" {
		tz, err = time.LoadLocation(name)
		if err != nil {
			return query{}, fmt.Errorf("tz %q: %w", name, err)
		}
	}

	switch {
	case c.Query("at") != "":
		q.at, err = time.ParseInLocation(time.RFC3339, c.Query("at"), tz)
		if err != nil {
			return query{}, fmt.Errorf("at: %w", err)
		}
		q.at = q.at.In(tz)
	case c.Query("date") != "":
		q.at, err = time.ParseInLocation("2006-01-02", c.Query("date"), tz)
		if err != nil {
			return query{}, fmt.Errorf("date: %w", err)
		}
	default:
		q.at = time.Now().In(tz)
	}

	return q, nil
}

func floatParam(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func requireStar(c *gin.Context) (ghatika.Star, error) {
	name := c.Query("star")
	if name == "" {
		return ghatika.Star{}, fmt.Errorf("star parameter is required")
	}
	star, ok := ghatika.StarByName(name)
	if !ok {
		return ghatika.Star{}, fmt.Errorf("star %q: %w", name, ghatika.ErrUnknownStar)
	}
	return star, nil
}

// parseSolveParams reads the inverse-solve target: alt (required), az
// (optional) and tol in degrees (default 0.5).
func parseSolveParams(c *gin.Context) (target ghatika.AltAz, tol float64, withAz bool, err error) {
	if c.Query("alt") == "" {
		return ghatika.AltAz{}, 0, false, fmt.Errorf("alt parameter is required")
	}
	if target.Alt, err = floatParam(c, "alt", 0); err != nil {
		return ghatika.AltAz{}, 0, false, err
	}
	if c.Query("az") != "" {
		withAz = true
		if target.Az, err = floatParam(c, "az", 0); err != nil {
			return ghatika.AltAz{}, 0, false, err
		}
	}
	if tol, err = floatParam(c, "tol", 0.5); err != nil {
		return ghatika.AltAz{}, 0, false, err
	}
	return target, tol, withAz, nil
}
