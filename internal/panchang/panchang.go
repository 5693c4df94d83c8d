// Package panchang reports the almanac elements displayed alongside the
// sky view. Only Vaar (the weekday) is computed; Tithi, Nakshatra, Yoga
// and Karana are fixed demonstration values. Accurate lunar-day and
// asterism computation needs a lunar ephemeris and is deliberately out of
// scope here.
package panchang

import "time"

// Details holds the five Panchang elements for an instant.
type Details struct {
	Tithi     string `json:"tithi"`
	Nakshatra string `json:"nakshatra"`
	Yoga      string `json:"yoga"`
	Karana    string `json:"karana"`
	Vaar      string `json:"vaar"`
}

var vaarNames = map[time.Weekday]string{
	time.Sunday:    "Ravivāra",
	time.Monday:    "Somavāra",
	time.Tuesday:   "Maṅgalavāra",
	time.Wednesday: "Budhavāra",
	time.Thursday:  "Guruvāra",
	time.Friday:    "Śukravāra",
	time.Saturday:  "Śanivāra",
}

// At returns the Panchang elements for the given local instant. The weekday
// is taken from t's location; everything else is a placeholder.
func At(t time.Time) Details {
	return Details{
		Tithi:     "Dashami",
		Nakshatra: "Rohini",
		Yoga:      "Siddha Yoga",
		Karana:    "Balava",
		Vaar:      vaarNames[t.Weekday()],
	}
}
