package ghatika

import (
	"math"
	"time"
)

// Ancient Indian subdivisions of the day measured from sunrise.
const (
	GhatisPerDay   = 60
	MuhurtasPerDay = 30
	YamasPerDay    = 8
)

// AncientTime holds the elapsed Ghaṭi, Muhūrta and Yāma counts since
// sunrise. Values are fractional and wrap modulo their period (60, 30, 8);
// use Split to separate the integer count from the fractional remainder.
type AncientTime struct {
	Ghati   float64 `json:"ghati"`
	Muhurta float64 `json:"muhurta"`
	Yama    float64 `json:"yama"`
}

// Split separates a wrapped unit value into its integer count and
// fractional remainder, e.g. 7.5 ghati -> (7, 0.5).
func Split(v float64) (int, float64) {
	whole := math.Floor(v)
	return int(whole), v - whole
}

// ConvertAncient converts the time elapsed since sunrise into ancient
// units. dayLength is the full period the units divide — ideally the span
// from this sunrise to the next, or a fixed 24 h approximation. Each unit
// wraps modulo its period, so now may lie past the end of the day.
func ConvertAncient(sunrise time.Time, dayLength time.Duration, now time.Time) AncientTime {
	frac := float64(now.Sub(sunrise)) / float64(dayLength)
	return AncientTime{
		Ghati:   wrapUnit(frac*GhatisPerDay, GhatisPerDay),
		Muhurta: wrapUnit(frac*MuhurtasPerDay, MuhurtasPerDay),
		Yama:    wrapUnit(frac*YamasPerDay, YamasPerDay),
	}
}

func wrapUnit(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}

// AncientAt computes the ancient-unit reading at now for the observer. The
// governing sunrise is the most recent one: today's, or — when now falls
// before today's sunrise — the previous day's, so elapsed time is never
// negative. Day length is measured to the following sunrise; if the Sun
// stops rising mid-window (polar transition), a 24 h day is assumed.
// ErrNoSunrise is returned when the governing sunrise does not exist.
func AncientAt(loc Coordinates, now time.Time) (AncientTime, error) {
	rise, err := FindSunrise(loc, now)
	if err != nil {
		return AncientTime{}, err
	}
	if !rise.OK {
		return AncientTime{}, ErrNoSunrise
	}

	governing := rise.Time
	if now.Before(governing) {
		prev, err := FindSunrise(loc, now.AddDate(0, 0, -1))
		if err != nil {
			return AncientTime{}, err
		}
		if !prev.OK {
			return AncientTime{}, ErrNoSunrise
		}
		governing = prev.Time
	}

	next, err := FindSunrise(loc, governing.AddDate(0, 0, 1))
	if err != nil {
		return AncientTime{}, err
	}
	dayLength := 24 * time.Hour
	if next.OK {
		dayLength = next.Time.Sub(governing)
	}

	return ConvertAncient(governing, dayLength, now), nil
}
