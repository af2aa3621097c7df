// README: Fare calculator; pure breakdown math over a resolved rate card.
package fare

import "cabsafar/internal/modules/rates"

// Pricing policy constants. Changing either changes every quote; do not
// adjust without product sign-off.
const (
	// GSTRate is the flat tax applied to the fare subtotal.
	GSTRate = 0.05
	// AdvanceRate is the deposit share of the total due at booking time.
	AdvanceRate = 0.2
)

// Breakdown itemizes a quoted fare. Values are unrounded; rounding happens at
// display time only.
type Breakdown struct {
	BaseFare                float64 `json:"base_fare"`
	ExtraKm                 float64 `json:"extra_km"`
	ExtraKmCharge           float64 `json:"extra_km_charge"`
	DayDriverAllowance      float64 `json:"day_driver_allowance"`
	NightCharge             float64 `json:"night_charge"`
	TotalDayDriverAllowance float64 `json:"total_day_driver_allowance"`
	TotalNightCharge        float64 `json:"total_night_charge"`
	GST                     float64 `json:"gst"`
	Total                   float64 `json:"total"`
}

// CalculateBreakdown computes the full fare for a rate card over a duration.
// Zero-valued rate fields contribute nothing; a trip under its kilometer
// allowance never produces a negative extra-km charge.
func CalculateBreakdown(rate rates.RateCard, d Duration) Breakdown {
	days := float64(d.Days)
	nights := float64(d.Nights)

	baseFare := rate.DailyKmLimit * days * rate.PerKmCharge

	totalAllowedKm := rate.DailyKmLimit * days
	extraKm := rate.TotalRunningKm - totalAllowedKm
	if extraKm < 0 {
		extraKm = 0
	}
	extraKmCharge := extraKm * rate.ExtraPerKmCharge

	totalDayDriverAllowance := days * rate.DayDriverAllowance
	totalNightCharge := nights * rate.NightCharge

	subtotal := baseFare + extraKmCharge + totalDayDriverAllowance + totalNightCharge
	gst := subtotal * GSTRate

	return Breakdown{
		BaseFare:                baseFare,
		ExtraKm:                 extraKm,
		ExtraKmCharge:           extraKmCharge,
		DayDriverAllowance:      rate.DayDriverAllowance,
		NightCharge:             rate.NightCharge,
		TotalDayDriverAllowance: totalDayDriverAllowance,
		TotalNightCharge:        totalNightCharge,
		GST:                     gst,
		Total:                   subtotal + gst,
	}
}
