// Package mains resolves the local electrical mains frequency from the
// system timezone. The EQ feedback uses it to suggest where a hum notch
// filter belongs (50 or 60 Hz).
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Frequency returns the local mains frequency in Hz.
// Falls back to 50Hz when the timezone cannot be resolved, since 50Hz is
// the more common standard globally.
func Frequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return FrequencyForTimezone(timezone)
}

// FrequencyForTimezone returns the mains frequency for an IANA timezone.
func FrequencyForTimezone(timezone string) int {
	// UTC/GMT carry no country association
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}
	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}

	// Japan is split 50/60Hz by region; the 50Hz Tokyo grid covers the
	// most populous area, so default there
	if country == "Japan" {
		return 50
	}
	if sixtyHertz[country] {
		return 60
	}
	return 50
}

// sixtyHertz lists the countries on 60Hz grids; everywhere else uses
// 50Hz. Compiled from the mains electricity country tables.
var sixtyHertz = map[string]bool{
	"United States":       true,
	"Canada":              true,
	"Mexico":              true,
	"Belize":              true,
	"Costa Rica":          true,
	"El Salvador":         true,
	"Guatemala":           true,
	"Honduras":            true,
	"Nicaragua":           true,
	"Panama":              true,
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
	"Brazil":              true, // both grids exist; 60Hz predominant
	"Colombia":            true,
	"Ecuador":             true,
	"Guyana":              true,
	"Peru":                true,
	"Suriname":            true,
	"Venezuela":           true,
	"South Korea":         true,
	"Taiwan":              true,
	"Philippines":         true,
	"Saudi Arabia":        true,
	"Guam":                true,
	"American Samoa":      true,
	"Marshall Islands":    true,
	"Micronesia":          true,
	"Palau":               true,
}
