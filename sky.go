package ghatika

import "time"

// StarPosition is one row of a sky snapshot: a catalog star with its
// observed position at the snapshot instant.
type StarPosition struct {
	Star    Star  `json:"star"`
	Pos     AltAz `json:"pos"`
	Visible bool  `json:"visible"` // above the horizon
}

// Sky computes the observed position of every catalog star for the
// observer at time t. Results are in catalog order; Visible flags stars
// above the geometric horizon.
func Sky(loc Coordinates, t time.Time) ([]StarPosition, error) {
	out := make([]StarPosition, 0, len(builtinCatalog))
	for _, s := range builtinCatalog {
		pos, err := DefaultProvider.StarAltAz(loc, s, t)
		if err != nil {
			return nil, err
		}
		out = append(out, StarPosition{
			Star:    s,
			Pos:     pos,
			Visible: pos.Alt > 0,
		})
	}
	return out, nil
}

// StarAltAz returns the observed position of a single star for the
// observer at time t.
func StarAltAz(loc Coordinates, star Star, t time.Time) (AltAz, error) {
	return DefaultProvider.StarAltAz(loc, star, t)
}

// SunAltAz returns the observed position of the Sun for the observer at
// time t.
func SunAltAz(loc Coordinates, t time.Time) (AltAz, error) {
	return DefaultProvider.SunAltAz(loc, t)
}
