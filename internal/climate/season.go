// Package climate turns coordinates and a travel date into short
// human-readable climate text for prompt injection.
package climate

import (
	"fmt"
	"time"
)

// SeasonName maps a calendar month to a northern-hemisphere season.
func SeasonName(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

// SeasonText returns the generic seasonal sentence used whenever real
// climate data cannot be fetched.
func SeasonText(m time.Month) string {
	return fmt.Sprintf("Generally %s conditions, with moderate temperatures and occasional rainfall.", SeasonName(m))
}
