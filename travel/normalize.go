// Package travel estimates one-way driving times between volleyball venues.
// A remote distance service is used when configured; a static city-pair
// table and a safe default keep estimates available offline too.
package travel

import (
	"fmt"
	"regexp"
	"strings"
)

// UnknownLocation is the sentinel for venue text nothing could be made of.
const UnknownLocation = "unbekannt"

// SAMS venue fields put the address as "(12345 City)" behind the hall name.
var postalCityRegex = regexp.MustCompile(`\((\d{5})\s+([^)]+)\)`)

var postalPrefixRegex = regexp.MustCompile(`^(\d{5}) (.+)$`)

// NormalizeVenue reduces free-form venue text ("Zweifelderhalle (07407
// Rudolstadt)") to a geocodable address. Preference order: the postal code
// and city in parentheses, then a known city name anywhere in the text,
// then the unknown sentinel.
func NormalizeVenue(venue string) string {
	if m := postalCityRegex.FindStringSubmatch(venue); m != nil {
		return fmt.Sprintf("%s %s, Deutschland", m[1], strings.TrimSpace(m[2]))
	}
	for _, city := range knownCities {
		if strings.Contains(venue, city) {
			return city + ", Deutschland"
		}
	}
	return UnknownLocation
}

// cityOf strips the postal code and country suffix off a normalized
// location, leaving the bare city name used by the offline table.
func cityOf(normalized string) string {
	s := strings.TrimSuffix(normalized, ", Deutschland")
	if m := postalPrefixRegex.FindStringSubmatch(s); m != nil {
		return m[2]
	}
	return s
}
