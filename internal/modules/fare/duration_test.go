package fare

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDaysAndNights(t *testing.T) {
	pickup := date(2026, 3, 10)

	tests := []struct {
		name       string
		pickupDate time.Time
		returnDate time.Time
		wantDays   int
		wantNights int
	}{
		{
			name:       "no return date defaults to single day",
			pickupDate: pickup,
			wantDays:   1,
			wantNights: 1,
		},
		{
			name:       "no pickup date defaults to single day",
			returnDate: pickup,
			wantDays:   1,
			wantNights: 1,
		},
		{
			name:       "same day still bills one night",
			pickupDate: pickup,
			returnDate: pickup,
			wantDays:   1,
			wantNights: 1,
		},
		{
			name:       "next day is two days one night",
			pickupDate: pickup,
			returnDate: date(2026, 3, 11),
			wantDays:   2,
			wantNights: 1,
		},
		{
			name:       "two days later spans three days inclusive",
			pickupDate: pickup,
			returnDate: date(2026, 3, 12),
			wantDays:   3,
			wantNights: 2,
		},
		{
			name:       "week long trip",
			pickupDate: pickup,
			returnDate: date(2026, 3, 17),
			wantDays:   8,
			wantNights: 7,
		},
		{
			name:       "return before pickup floors at one day",
			pickupDate: pickup,
			returnDate: date(2026, 3, 8),
			wantDays:   1,
			wantNights: 1,
		},
		{
			name:       "partial day rounds up",
			pickupDate: time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC),
			returnDate: time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC),
			wantDays:   2,
			wantNights: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDaysAndNights(tt.pickupDate, tt.returnDate)
			if got.Days != tt.wantDays || got.Nights != tt.wantNights {
				t.Errorf("CalculateDaysAndNights() = {%d, %d}, want {%d, %d}",
					got.Days, got.Nights, tt.wantDays, tt.wantNights)
			}
		})
	}
}

func TestCalculateDaysAndNights_NeverZero(t *testing.T) {
	pickup := date(2026, 1, 1)
	for offset := -5; offset <= 30; offset++ {
		ret := pickup.AddDate(0, 0, offset)
		got := CalculateDaysAndNights(pickup, ret)
		if got.Days < 1 || got.Nights < 1 {
			t.Errorf("offset %d: duration {%d, %d} below floor", offset, got.Days, got.Nights)
		}
	}
}
