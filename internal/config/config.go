// Package config holds environment-based settings for the HTTP server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server address and the default observer used when a
// request omits location parameters.
type Config struct {
	Addr       string
	DefaultLat float64
	DefaultLon float64
	DefaultTZ  *time.Location
}

// Load reads configuration from environment variables. Every value has a
// default; the fallback observer is Bhopal, India (23°N 77°E, IST), the
// location the tool was built around.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:       ":8080",
		DefaultLat: 23.0,
		DefaultLon: 77.0,
	}

	if addr := os.Getenv("GHATIKA_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if v := os.Getenv("GHATIKA_LAT"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("GHATIKA_LAT: %w", err)
		}
		cfg.DefaultLat = lat
	}
	if v := os.Getenv("GHATIKA_LON"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("GHATIKA_LON: %w", err)
		}
		cfg.DefaultLon = lon
	}

	tzName := os.Getenv("GHATIKA_TZ")
	if tzName == "" {
		tzName = "Asia/Kolkata"
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("GHATIKA_TZ %q: %w", tzName, err)
	}
	cfg.DefaultTZ = tz

	return cfg, nil
}
