// Package itinerary orchestrates model generation passes into final
// itinerary text, mining draft output for place names along the way.
package itinerary

import (
	"regexp"
	"strings"
)

// dayLineRe matches itinerary day headings of the form "Day N: <rest>",
// tolerating leading markdown decoration.
var dayLineRe = regexp.MustCompile(`(?mi)^[\s#*]*day\s+\d+\s*:\s*(.+)$`)

// boilerplatePrefixes are travel phrases the model tends to put before the
// actual place name. Matched case-insensitively, longest first.
var boilerplatePrefixes = []string{
	"departure from",
	"depart from",
	"arrival in",
	"transfer to",
	"drive to",
	"travel to",
	"fly to",
}

// ExtractCities pulls de-duplicated place names out of day-labeled itinerary
// text. The country itself is excluded; an empty result is a normal outcome
// when the model ignored the "Day N: Place" heading convention.
func ExtractCities(text, country string) []string {
	seen := make(map[string]struct{})
	var cities []string

	for _, m := range dayLineRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])

		lower := strings.ToLower(name)
		for _, prefix := range boilerplatePrefixes {
			if strings.HasPrefix(lower, prefix) {
				name = strings.TrimSpace(name[len(prefix):])
				break
			}
		}

		if i := strings.Index(name, ","); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(strings.Trim(name, "*"))
		name = strings.TrimSpace(name)

		if name == "" || strings.EqualFold(name, country) {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, name)
	}

	return cities
}
