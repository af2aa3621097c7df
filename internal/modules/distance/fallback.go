package distance

import "strings"

// DefaultKm is used when a city pair is not in the static table.
const DefaultKm = 500

// cityDistances holds approximate road distances for the routes we quote most.
var cityDistances = map[string]float64{
	"delhi-mumbai":        1400,
	"delhi-bangalore":     2100,
	"mumbai-bangalore":    980,
	"delhi-chennai":       2200,
	"mumbai-chennai":      1340,
	"delhi-kolkata":       1500,
	"varanasi-hyderabad":  1200,
	"delhi-hyderabad":     1600,
	"mumbai-hyderabad":    700,
	"varanasi-delhi":      800,
	"varanasi-mumbai":     1200,
	"varanasi-bangalore":  1500,
	"varanasi-chennai":    1300,
	"varanasi-kolkata":    700,
	"delhi-varanasi":      800,
	"mumbai-varanasi":     1200,
	"bangalore-varanasi":  1500,
	"chennai-varanasi":    1300,
	"kolkata-varanasi":    700,
	"hyderabad-varanasi":  1200,
	"mumbai-delhi":        1400,
	"bangalore-delhi":     2100,
	"bangalore-mumbai":    980,
	"chennai-delhi":       2200,
	"chennai-mumbai":      1340,
	"kolkata-delhi":       1500,
	"hyderabad-delhi":     1600,
	"hyderabad-mumbai":    700,
}

// fallbackKm estimates the distance for a city pair from the static table,
// trying both key orders before giving up and returning DefaultKm.
func fallbackKm(pickup, destination string) float64 {
	p := NormalizeCity(pickup)
	d := NormalizeCity(destination)
	if km, ok := cityDistances[p+"-"+d]; ok {
		return km
	}
	if km, ok := cityDistances[d+"-"+p]; ok {
		return km
	}
	return DefaultKm
}

// NormalizeCity reduces a free-text place name to a comparable key: lowercase,
// letters and spaces only, first word. "Varanasi, Uttar Pradesh" -> "varanasi".
// Shared with autocomplete so suggestions match catalog cities the same way.
func NormalizeCity(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		if (c >= 'a' && c <= 'z') || c == ' ' {
			b.WriteRune(c)
		}
	}
	fields := strings.Fields(b.String())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
