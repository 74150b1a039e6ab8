// Package mains detects the local electrical mains frequency from the system
// timezone. Measurement-derived EQ presets often carry deep narrow cuts at
// mains harmonics; knowing the local frequency lets reports label those bands
// as likely hum notches.
package mains

import (
	"math"
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// DefaultHz is the fallback when detection fails; 50 Hz is the more common
// mains frequency globally.
const DefaultHz = 50

// humHarmonics is how many harmonics of the mains frequency count as hum
// candidates. Hum shows strongest at the fundamental and the first few
// harmonics.
const humHarmonics = 4

// humTolerance is the relative frequency window around a harmonic within
// which a filter counts as targeting it.
const humTolerance = 0.02

// Hz returns the local mains frequency (50 or 60).
func Hz() int {
	zone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return DefaultHz
	}
	return HzForTimezone(zone)
}

// HzForTimezone returns the mains frequency for an IANA timezone.
// Exported for testing with specific timezones.
func HzForTimezone(zone string) int {
	// UTC/GMT and the Etc/ zones have no country association.
	if zone == "UTC" || zone == "GMT" || strings.HasPrefix(zone, "Etc/") {
		return DefaultHz
	}

	zoneMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return DefaultHz
	}
	country, err := zoneMap.GetCountry(zone)
	if err != nil {
		return DefaultHz
	}

	if hz60Countries[country] {
		return 60
	}
	// Japan splits 50/60 Hz by region; 50 Hz covers the most populous area
	// and is the safer guess, so it stays out of the 60 Hz set.
	return DefaultHz
}

// HumHarmonic reports whether fcHz sits on a mains harmonic, and which one.
// Returns 0, false when the frequency is not a hum candidate.
func HumHarmonic(fcHz float64, mainsHz int) (int, bool) {
	if fcHz <= 0 || mainsHz <= 0 {
		return 0, false
	}
	for n := 1; n <= humHarmonics; n++ {
		harmonic := float64(n * mainsHz)
		if math.Abs(fcHz-harmonic) <= harmonic*humTolerance {
			return n, true
		}
	}
	return 0, false
}

// hz60Countries lists countries on 60 Hz mains; everywhere else uses 50 Hz.
// Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var hz60Countries = map[string]bool{
	// Americas
	"United States": true,
	"Canada":        true,
	"Mexico":        true,
	"Belize":        true,
	"Costa Rica":    true,
	"El Salvador":   true,
	"Guatemala":     true,
	"Honduras":      true,
	"Nicaragua":     true,
	"Panama":        true,
	"Brazil":        true, // both frequencies exist; 60 Hz predominant
	"Colombia":      true,
	"Ecuador":       true,
	"Guyana":        true,
	"Peru":          true,
	"Suriname":      true,
	"Venezuela":     true,

	// Caribbean
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,

	// Asia
	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	// Pacific
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
