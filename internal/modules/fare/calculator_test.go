package fare

import (
	"math"
	"testing"

	"cabsafar/internal/modules/rates"
)

func TestCalculateBreakdown_BaseRoundTrip(t *testing.T) {
	rate := rates.RateCard{
		DailyKmLimit:       300,
		PerKmCharge:        12,
		ExtraPerKmCharge:   15,
		DayDriverAllowance: 300,
		NightCharge:        200,
		TotalRunningKm:     600,
	}

	got := CalculateBreakdown(rate, Duration{Days: 2, Nights: 1})

	if got.BaseFare != 7200 {
		t.Errorf("BaseFare = %v, want 7200", got.BaseFare)
	}
	if got.ExtraKm != 0 || got.ExtraKmCharge != 0 {
		t.Errorf("ExtraKm = %v (%v), want 0", got.ExtraKm, got.ExtraKmCharge)
	}
	if got.TotalDayDriverAllowance != 600 {
		t.Errorf("TotalDayDriverAllowance = %v, want 600", got.TotalDayDriverAllowance)
	}
	if got.TotalNightCharge != 200 {
		t.Errorf("TotalNightCharge = %v, want 200", got.TotalNightCharge)
	}
	if got.GST != 400 {
		t.Errorf("GST = %v, want 400", got.GST)
	}
	if got.Total != 8400 {
		t.Errorf("Total = %v, want 8400", got.Total)
	}
}

func TestCalculateBreakdown_ExtraKm(t *testing.T) {
	rate := rates.RateCard{
		DailyKmLimit:       300,
		PerKmCharge:        12,
		ExtraPerKmCharge:   15,
		DayDriverAllowance: 300,
		NightCharge:        200,
		TotalRunningKm:     900,
	}

	got := CalculateBreakdown(rate, Duration{Days: 2, Nights: 1})

	// Allowed 600 km over two days; 300 km over at 15/km.
	if got.ExtraKm != 300 {
		t.Errorf("ExtraKm = %v, want 300", got.ExtraKm)
	}
	if got.ExtraKmCharge != 4500 {
		t.Errorf("ExtraKmCharge = %v, want 4500", got.ExtraKmCharge)
	}
	want := (7200.0 + 4500 + 600 + 200) * 1.05
	if math.Abs(got.Total-want) > 1e-9 {
		t.Errorf("Total = %v, want %v", got.Total, want)
	}
}

func TestCalculateBreakdown_UnderAllowanceNeverNegative(t *testing.T) {
	rate := rates.RateCard{
		DailyKmLimit:     250,
		PerKmCharge:      10,
		ExtraPerKmCharge: 14,
		TotalRunningKm:   100,
	}

	got := CalculateBreakdown(rate, Duration{Days: 1, Nights: 1})

	if got.ExtraKm != 0 || got.ExtraKmCharge != 0 {
		t.Errorf("under-allowance trip produced extra km: %v (%v)", got.ExtraKm, got.ExtraKmCharge)
	}
}

func TestCalculateBreakdown_ZeroRateFields(t *testing.T) {
	got := CalculateBreakdown(rates.RateCard{}, Duration{Days: 3, Nights: 2})

	for name, v := range map[string]float64{
		"BaseFare":                got.BaseFare,
		"ExtraKm":                 got.ExtraKm,
		"ExtraKmCharge":           got.ExtraKmCharge,
		"TotalDayDriverAllowance": got.TotalDayDriverAllowance,
		"TotalNightCharge":        got.TotalNightCharge,
		"GST":                     got.GST,
		"Total":                   got.Total,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0 for empty rate card", name, v)
		}
	}
}

func TestCalculateBreakdown_GSTConsistency(t *testing.T) {
	cards := []rates.RateCard{
		{DailyKmLimit: 300, PerKmCharge: 12, ExtraPerKmCharge: 15, DayDriverAllowance: 300, NightCharge: 200, TotalRunningKm: 900},
		{DailyKmLimit: 150, PerKmCharge: 9, ExtraPerKmCharge: 11, DayDriverAllowance: 250, NightCharge: 150, TotalRunningKm: 80},
		{DailyKmLimit: 80, PerKmCharge: 14, BaseFare: 1800, TotalRunningKm: 0},
	}
	durations := []Duration{{1, 1}, {2, 1}, {5, 4}}

	for _, rate := range cards {
		for _, d := range durations {
			got := CalculateBreakdown(rate, d)
			subtotal := got.BaseFare + got.ExtraKmCharge + got.TotalDayDriverAllowance + got.TotalNightCharge
			if math.Abs(got.Total-subtotal*(1+GSTRate)) > 1e-9 {
				t.Errorf("total %v inconsistent with subtotal %v at %+v", got.Total, subtotal, d)
			}
			if got.BaseFare < 0 || got.ExtraKmCharge < 0 || got.TotalDayDriverAllowance < 0 ||
				got.TotalNightCharge < 0 || got.GST < 0 || got.Total < 0 {
				t.Errorf("negative component in %+v", got)
			}
		}
	}
}
