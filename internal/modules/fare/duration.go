// README: Duration calculator; calendar-inclusive days and billed nights.
package fare

import (
	"math"
	"time"
)

// Duration is the billable length of a trip.
type Duration struct {
	Days   int `json:"number_of_days"`
	Nights int `json:"number_of_nights"`
}

// CalculateDaysAndNights derives the billable duration from pickup and return
// dates. A missing date (zero value) means a single-day trip. Both pickup and
// return calendar days count as travel days, so a two-night trip spans three
// days. A trip is never billed as zero duration.
//
// Same-day pickup and return still bills one night. That matches the
// long-standing pricing behavior; changing it changes quotes.
func CalculateDaysAndNights(pickupDate, returnDate time.Time) Duration {
	if pickupDate.IsZero() || returnDate.IsZero() {
		return Duration{Days: 1, Nights: 1}
	}

	daysDifference := int(math.Ceil(returnDate.Sub(pickupDate).Hours() / 24))

	days := daysDifference + 1
	if days < 1 {
		days = 1
	}
	nights := daysDifference
	if nights < 1 {
		nights = 1
	}
	return Duration{Days: days, Nights: nights}
}
