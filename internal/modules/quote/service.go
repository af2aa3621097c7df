// README: Quote service; prices every active vehicle for one trip request.
package quote

import (
	"context"

	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/fare"
	"cabsafar/internal/modules/rates"
)

// VehicleSource lists the vehicles worth quoting.
type VehicleSource interface {
	ListVehicles(ctx context.Context, activeOnly bool) ([]catalog.Vehicle, error)
}

// RateResolver resolves one rate card per vehicle, or nil for no offer.
type RateResolver interface {
	Resolve(ctx context.Context, q rates.Query) (*rates.RateCard, error)
}

type Service struct {
	vehicles VehicleSource
	rates    RateResolver
}

func NewService(vehicles VehicleSource, rateResolver RateResolver) *Service {
	return &Service{vehicles: vehicles, rates: rateResolver}
}

// Search resolves a rate per active vehicle and prices it over the trip
// duration. Vehicles without any applicable rate are left out; an empty
// result is a valid "no vehicles available" answer.
func (s *Service) Search(ctx context.Context, req TripRequest) (SearchResult, error) {
	if err := req.Validate(); err != nil {
		return SearchResult{}, err
	}

	duration := fare.CalculateDaysAndNights(req.PickupDate, req.ReturnDate)

	vehicles, err := s.vehicles.ListVehicles(ctx, true)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{Duration: duration}
	for _, v := range vehicles {
		rate, err := s.rates.Resolve(ctx, rates.Query{
			PickupCityID:   req.PickupCityID,
			PickupCityName: req.PickupCityName,
			Destination:    req.Destination,
			VehicleID:      v.ID,
			TripType:       req.TripType,
		})
		if err != nil {
			return SearchResult{}, err
		}
		if rate == nil {
			continue
		}

		breakdown := fare.CalculateBreakdown(*rate, duration)
		result.Quotes = append(result.Quotes, VehicleQuote{
			Vehicle:       v,
			Rate:          *rate,
			RateID:        rate.ID,
			Fare:          breakdown,
			AdvanceAmount: breakdown.Total * fare.AdvanceRate,
		})
		if result.DistanceWarning == "" {
			result.DistanceWarning = rate.DistanceWarning
		}
	}
	return result, nil
}
