package quote

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/fare"
	"cabsafar/internal/modules/rates"
	"cabsafar/internal/types"
)

type fakeVehicles struct {
	list []catalog.Vehicle
	err  error
}

func (f fakeVehicles) ListVehicles(_ context.Context, _ bool) ([]catalog.Vehicle, error) {
	return f.list, f.err
}

type fakeRates struct {
	byVehicle map[types.ID]*rates.RateCard
	err       error
}

func (f fakeRates) Resolve(_ context.Context, q rates.Query) (*rates.RateCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byVehicle[q.VehicleID], nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roundTripRequest() TripRequest {
	return TripRequest{
		TripType:       types.TripRound,
		PickupCityID:   "varanasi",
		PickupCityName: "Varanasi",
		Destination:    rates.CityDestination{CityID: "delhi", Name: "Delhi"},
		PickupDate:     date(2026, 3, 10),
		ReturnDate:     date(2026, 3, 11),
	}
}

func TestSearch_PricesEachVehicle(t *testing.T) {
	vehicles := fakeVehicles{list: []catalog.Vehicle{
		{ID: "sedan", Name: "Dzire"},
		{ID: "suv", Name: "Ertiga"},
	}}
	rateSvc := fakeRates{byVehicle: map[types.ID]*rates.RateCard{
		"sedan": {
			ID: "r1", DailyKmLimit: 300, PerKmCharge: 12, ExtraPerKmCharge: 15,
			DayDriverAllowance: 300, NightCharge: 200, TotalRunningKm: 600,
		},
		"suv": {
			ID: "r2", DailyKmLimit: 300, PerKmCharge: 16, ExtraPerKmCharge: 19,
			DayDriverAllowance: 300, NightCharge: 250, TotalRunningKm: 600,
			DistanceWarning: "using default distance",
		},
	}}

	got, err := NewService(vehicles, rateSvc).Search(context.Background(), roundTripRequest())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if got.Duration.Days != 2 || got.Duration.Nights != 1 {
		t.Errorf("duration = %+v, want 2 days 1 night", got.Duration)
	}
	if len(got.Quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(got.Quotes))
	}
	if got.Quotes[0].Fare.Total != 8400 {
		t.Errorf("sedan total = %v, want 8400", got.Quotes[0].Fare.Total)
	}
	for _, q := range got.Quotes {
		wantAdvance := q.Fare.Total * fare.AdvanceRate
		if math.Abs(q.AdvanceAmount-wantAdvance) > 1e-9 {
			t.Errorf("%s advance = %v, want %v", q.Vehicle.ID, q.AdvanceAmount, wantAdvance)
		}
		if q.RateID == "" {
			t.Errorf("%s quote missing rate id", q.Vehicle.ID)
		}
	}
	if got.DistanceWarning != "using default distance" {
		t.Errorf("DistanceWarning = %q, want first warning surfaced", got.DistanceWarning)
	}
}

func TestSearch_SkipsVehiclesWithoutRates(t *testing.T) {
	vehicles := fakeVehicles{list: []catalog.Vehicle{
		{ID: "sedan"}, {ID: "tempo"},
	}}
	rateSvc := fakeRates{byVehicle: map[types.ID]*rates.RateCard{
		"sedan": {ID: "r1", DailyKmLimit: 300, PerKmCharge: 12, TotalRunningKm: 600},
	}}

	got, err := NewService(vehicles, rateSvc).Search(context.Background(), roundTripRequest())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got.Quotes) != 1 || got.Quotes[0].Vehicle.ID != "sedan" {
		t.Errorf("quotes = %+v, want only the sedan", got.Quotes)
	}
}

func TestSearch_NoRatesAtAll(t *testing.T) {
	vehicles := fakeVehicles{list: []catalog.Vehicle{{ID: "sedan"}}}

	got, err := NewService(vehicles, fakeRates{}).Search(context.Background(), roundTripRequest())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got.Quotes) != 0 {
		t.Errorf("quotes = %+v, want empty result", got.Quotes)
	}
}

func TestSearch_ResolverErrorPropagates(t *testing.T) {
	vehicles := fakeVehicles{list: []catalog.Vehicle{{ID: "sedan"}}}
	boom := errors.New("redis exploded")

	_, err := NewService(vehicles, fakeRates{err: boom}).Search(context.Background(), roundTripRequest())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want resolver error", err)
	}
}

func TestTripRequestValidate(t *testing.T) {
	pickup := date(2026, 3, 10)

	tests := []struct {
		name    string
		req     TripRequest
		wantErr bool
	}{
		{
			"round trip to city",
			TripRequest{TripType: types.TripRound, PickupCityID: "a", Destination: rates.CityDestination{CityID: "b"}, PickupDate: pickup},
			false,
		},
		{
			"oneway to place",
			TripRequest{TripType: types.TripOneWay, PickupCityID: "a", Destination: rates.PlaceDestination{Name: "Sarnath"}, PickupDate: pickup},
			false,
		},
		{
			"local with package",
			TripRequest{TripType: types.TripLocal, PickupCityID: "a", Destination: rates.PackageDestination{PackageID: "p"}, PickupDate: pickup},
			false,
		},
		{
			"airport with transfer",
			TripRequest{TripType: types.TripAirport, PickupCityID: "a", Destination: rates.PlaceDestination{Name: "LKO Airport"}, Transfer: types.TransferGoingTo, PickupDate: pickup},
			false,
		},
		{
			"missing pickup city",
			TripRequest{TripType: types.TripRound, Destination: rates.CityDestination{CityID: "b"}, PickupDate: pickup},
			true,
		},
		{
			"missing pickup date",
			TripRequest{TripType: types.TripRound, PickupCityID: "a", Destination: rates.CityDestination{CityID: "b"}},
			true,
		},
		{
			"unknown trip type",
			TripRequest{TripType: "weekly", PickupCityID: "a", Destination: rates.CityDestination{CityID: "b"}, PickupDate: pickup},
			true,
		},
		{
			"local without package",
			TripRequest{TripType: types.TripLocal, PickupCityID: "a", Destination: rates.CityDestination{CityID: "b"}, PickupDate: pickup},
			true,
		},
		{
			"round trip with package",
			TripRequest{TripType: types.TripRound, PickupCityID: "a", Destination: rates.PackageDestination{PackageID: "p"}, PickupDate: pickup},
			true,
		},
		{
			"airport without transfer direction",
			TripRequest{TripType: types.TripAirport, PickupCityID: "a", Destination: rates.PlaceDestination{Name: "LKO"}, PickupDate: pickup},
			true,
		},
		{
			"airport without airport name",
			TripRequest{TripType: types.TripAirport, PickupCityID: "a", Destination: rates.PlaceDestination{}, Transfer: types.TransferComingFrom, PickupDate: pickup},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidTrip) {
				t.Errorf("Validate() = %v, want ErrInvalidTrip", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
