package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/svemuri/ghatika"
	"github.com/svemuri/ghatika/internal/panchang"
)

func main() {
	log.SetFlags(0)

	// No args or a leading flag runs the default sunrise/sunset mode;
	// otherwise the first arg is a subcommand.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runSunrise(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "ancient":
		runAncient(os.Args[2:])
	case "transit":
		runTransit(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	case "sky":
		runSky(os.Args[2:])
	case "panchang":
		runPanchang(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `ghatika – night sky and ancient Indian timekeeping

Usage:
  ghatika [flags]            # sunrise/sunset (default mode)
  ghatika ancient [flags]    # Ghaṭi / Muhūrta / Yāma since sunrise
  ghatika transit [flags]    # meridian transit of a catalog star
  ghatika solve [flags]      # times at which a star sits at a given alt/az
  ghatika sky [flags]        # positions of all catalog stars
  ghatika panchang [flags]   # almanac elements (Vaar is computed, rest are demo)

Common flags:
  -lat float    latitude in degrees (north positive)
  -lon float    longitude in degrees (east positive)
  -tz string    IANA time zone name (default "Local")
  -date string  date in YYYY-MM-DD (defaults to today)

Run "ghatika <subcommand> -h" for the full flag list.
`)
}

// observerFlags registers the flags every mode shares and returns a
// function that resolves them after parsing.
func observerFlags(fs *flag.FlagSet) func() (ghatika.Coordinates, time.Time) {
	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	tzName := fs.String("tz", "Local", "IANA time zone name (e.g. Asia/Kolkata)")
	dateS := fs.String("date", "", "date in YYYY-MM-DD (optional, defaults to today)")

	return func() (ghatika.Coordinates, time.Time) {
		tz, err := time.LoadLocation(*tzName)
		if err != nil {
			log.Fatalf("invalid time zone %q: %v", *tzName, err)
		}

		var date time.Time
		if *dateS == "" {
			now := time.Now().In(tz)
			date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz)
		} else {
			date, err = time.ParseInLocation("2006-01-02", *dateS, tz)
			if err != nil {
				log.Fatalf("invalid -date %q: %v", *dateS, err)
			}
		}

		if *lat == 0 && *lon == 0 {
			log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
		}

		return ghatika.Coordinates{Lat: *lat, Lon: *lon}, date
	}
}

func runSunrise(args []string) {
	fs := flag.NewFlagSet("ghatika", flag.ExitOnError)
	observer := observerFlags(fs)
	threshold := fs.Float64("threshold", ghatika.ApparentSunriseAltitude,
		"solar altitude threshold in degrees (-6 for civil dawn, -18 for astronomical)")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	loc, date := observer()

	rise, err := ghatika.FindSunriseAt(loc, date, *threshold)
	if err != nil {
		log.Fatalf("error computing sunrise: %v", err)
	}
	set, err := ghatika.FindSunsetAt(loc, date, *threshold)
	if err != nil {
		log.Fatalf("error computing sunset: %v", err)
	}

	if *jsonOut {
		printJSON(map[string]any{
			"latitude":  loc.Lat,
			"longitude": loc.Lon,
			"date":      date.Format("2006-01-02"),
			"timezone":  date.Location().String(),
			"sunrise":   rise,
			"sunset":    set,
		})
		return
	}

	fmt.Printf("Sun events for lat=%.6f lon=%.6f on %s (%s)\n\n",
		loc.Lat, loc.Lon, date.Format("2006-01-02"), date.Location())
	printEvent("Sunrise", rise)
	printEvent("Sunset ", set)
}

func printEvent(label string, r ghatika.SunriseResult) {
	if r.OK {
		fmt.Printf("%s: %s\n", label, r.Time.Format(time.RFC3339))
	} else {
		fmt.Printf("%s: none (polar day or night)\n", label)
	}
}

func runAncient(args []string) {
	fs := flag.NewFlagSet("ancient", flag.ExitOnError)
	observer := observerFlags(fs)
	atS := fs.String("at", "", "instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (defaults to now)")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	loc, date := observer()
	at := parseInstant(*atS, date.Location())

	reading, err := ghatika.AncientAt(loc, at)
	if err != nil {
		log.Fatalf("error computing ancient units: %v", err)
	}

	if *jsonOut {
		printJSON(reading)
		return
	}

	g, gf := ghatika.Split(reading.Ghati)
	m, mf := ghatika.Split(reading.Muhurta)
	y, yf := ghatika.Split(reading.Yama)
	fmt.Printf("Ancient time at %s\n", at.Format(time.RFC3339))
	fmt.Printf("  Ghaṭi   : %d + %.3f  (%.3f)\n", g, gf, reading.Ghati)
	fmt.Printf("  Muhūrta : %d + %.3f  (%.3f)\n", m, mf, reading.Muhurta)
	fmt.Printf("  Yāma    : %d + %.3f  (%.3f)\n", y, yf, reading.Yama)
}

func runTransit(args []string) {
	fs := flag.NewFlagSet("transit", flag.ExitOnError)
	observer := observerFlags(fs)
	starName := fs.String("star", "", "catalog star name (e.g. Sirius, Vega, Dhruva)")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	star := lookupStar(*starName)
	loc, date := observer()

	at, err := ghatika.MeridianTransitOn(loc, star, date)
	if err != nil {
		log.Fatalf("error computing transit: %v", err)
	}
	pos, err := ghatika.StarAltAz(loc, star, at)
	if err != nil {
		log.Fatalf("error computing position: %v", err)
	}

	if *jsonOut {
		printJSON(map[string]any{"star": star.Name, "transit": at, "pos": pos})
		return
	}
	fmt.Printf("%s transits at %s (alt %.2f°, az %.2f°)\n",
		star.Name, at.Format(time.RFC3339), pos.Alt, pos.Az)
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	observer := observerFlags(fs)
	starName := fs.String("star", "", "catalog star name (e.g. Sirius, Vega, Dhruva)")
	alt := fs.Float64("alt", 0, "target altitude in degrees")
	az := fs.Float64("az", -1, "target azimuth in degrees (omit for altitude-only)")
	tol := fs.Float64("tol", 0.5, "match tolerance in degrees")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	star := lookupStar(*starName)
	loc, date := observer()
	w := ghatika.DayWindow(date)

	var (
		candidates []time.Time
		err        error
	)
	if *az >= 0 {
		candidates, err = ghatika.SolvePosition(loc, star, ghatika.AltAz{Alt: *alt, Az: *az}, w, *tol)
	} else {
		candidates, err = ghatika.SolveAltitude(loc, star, *alt, w, *tol)
	}
	if err != nil {
		log.Fatalf("error solving: %v", err)
	}

	if *jsonOut {
		printJSON(map[string]any{"star": star.Name, "candidates": candidates})
		return
	}
	if len(candidates) == 0 {
		fmt.Printf("%s never matches that position on %s\n", star.Name, date.Format("2006-01-02"))
		return
	}
	fmt.Printf("%s matches at:\n", star.Name)
	for _, t := range candidates {
		fmt.Printf("  %s\n", t.Format(time.RFC3339))
	}
}

func runSky(args []string) {
	fs := flag.NewFlagSet("sky", flag.ExitOnError)
	observer := observerFlags(fs)
	atS := fs.String("at", "", "instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (defaults to now)")
	visibleOnly := fs.Bool("visible", false, "only show stars above the horizon")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	loc, date := observer()
	at := parseInstant(*atS, date.Location())

	stars, err := ghatika.Sky(loc, at)
	if err != nil {
		log.Fatalf("error computing sky: %v", err)
	}

	if *jsonOut {
		printJSON(stars)
		return
	}
	fmt.Printf("Sky at %s for lat=%.4f lon=%.4f\n\n", at.Format(time.RFC3339), loc.Lat, loc.Lon)
	for _, s := range stars {
		if *visibleOnly && !s.Visible {
			continue
		}
		marker := " "
		if s.Visible {
			marker = "*"
		}
		fmt.Printf("%s %-38s alt %7.2f°  az %7.2f°  mag %5.2f\n",
			marker, s.Star.Name, s.Pos.Alt, s.Pos.Az, s.Star.Mag)
	}
}

func runPanchang(args []string) {
	fs := flag.NewFlagSet("panchang", flag.ExitOnError)
	observer := observerFlags(fs)
	atS := fs.String("at", "", "instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (defaults to now)")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	_, date := observer()
	at := parseInstant(*atS, date.Location())
	d := panchang.At(at)

	if *jsonOut {
		printJSON(d)
		return
	}
	fmt.Printf("Panchang for %s\n", at.Format("2006-01-02"))
	fmt.Printf("  Tithi     : %s\n", d.Tithi)
	fmt.Printf("  Nakshatra : %s\n", d.Nakshatra)
	fmt.Printf("  Yoga      : %s\n", d.Yoga)
	fmt.Printf("  Karana    : %s\n", d.Karana)
	fmt.Printf("  Vaar      : %s\n", d.Vaar)
	fmt.Println("\nNote: values other than Vaar are demonstration placeholders.")
}

func lookupStar(name string) ghatika.Star {
	if name == "" {
		log.Fatalf("-star is required (one of the catalog stars, e.g. Sirius)")
	}
	star, ok := ghatika.StarByName(name)
	if !ok {
		names := make([]string, 0, len(ghatika.Catalog()))
		for _, s := range ghatika.Catalog() {
			names = append(names, s.Name)
		}
		log.Fatalf("unknown star %q; catalog:\n  %s", name, strings.Join(names, "\n  "))
	}
	return star
}

func parseInstant(s string, tz *time.Location) time.Time {
	if s == "" {
		return time.Now().In(tz)
	}
	layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, tz); err == nil {
			return t
		}
	}
	log.Fatalf("could not parse instant %q", s)
	return time.Time{}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}
