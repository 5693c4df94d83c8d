package ghatika

// builtinCatalog lists the bright stars shown in the sky view, named by
// their Indian designation with the Western name in parentheses. RA/Dec
// are ICRS J2000 values; proper motion is ignored.
var builtinCatalog = []Star{
	{Name: "Chitrā (Spica)", RAHours: 13.419889, DecDeg: -11.161319, Mag: 0.97},
	{Name: "Lubdhaka / Mrigavyādha (Sirius)", RAHours: 6.752477, DecDeg: -16.716116, Mag: -1.46},
	{Name: "Agastya (Canopus)", RAHours: 6.399192, DecDeg: -52.695661, Mag: -0.74},
	{Name: "Svātī (Arcturus)", RAHours: 14.261208, DecDeg: 19.182416, Mag: -0.05},
	{Name: "Abhijit (Vega)", RAHours: 18.615649, DecDeg: 38.783691, Mag: 0.03},
	{Name: "Brahmaṛṣi (Capella)", RAHours: 5.278155, DecDeg: 45.997991, Mag: 0.08},
	{Name: "Mṛgaśīrṣa (Rigel)", RAHours: 5.242298, DecDeg: -8.201639, Mag: 0.12},
	{Name: "Bhādrapadā (Procyon)", RAHours: 7.655033, DecDeg: 5.225, Mag: 0.38},
	{Name: "Ārdrā (Betelgeuse)", RAHours: 5.919529, DecDeg: 7.407064, Mag: 0.42},
	{Name: "Rohiṇī (Aldebaran)", RAHours: 4.598677, DecDeg: 16.509302, Mag: 0.75},
	{Name: "Dhruva (Polaris)", RAHours: 2.530301, DecDeg: 89.264109, Mag: 1.98},
}

// Catalog returns the built-in star catalog. The slice is a copy; callers
// may reorder or filter it freely.
func Catalog() []Star {
	out := make([]Star, len(builtinCatalog))
	copy(out, builtinCatalog)
	return out
}

// StarByName looks a star up by its catalog name or, as a convenience, by
// any parenthesized or slash-separated part of it ("Sirius", "Lubdhaka").
func StarByName(name string) (Star, bool) {
	for _, s := range builtinCatalog {
		if s.Name == name || containsWord(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

// containsWord reports whether name appears in full as one of the
// space/punctuation-separated words of catalogName.
func containsWord(catalogName, name string) bool {
	word := ""
	for _, r := range catalogName {
		switch r {
		case ' ', '(', ')', '/':
			if word == name {
				return true
			}
			word = ""
		default:
			word += string(r)
		}
	}
	return word == name
}
