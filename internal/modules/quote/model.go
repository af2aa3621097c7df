// README: Trip request and priced vehicle card models.
package quote

import (
	"errors"
	"time"

	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/fare"
	"cabsafar/internal/modules/rates"
	"cabsafar/internal/types"
)

var (
	ErrInvalidTrip = errors.New("invalid trip request")
)

// TripRequest is the immutable search input. Destination is a tagged variant,
// so "city vs free place vs package" is decided at the HTTP boundary, not by
// string conventions inside the core.
type TripRequest struct {
	TripType       types.TripType
	PickupCityID   types.ID
	PickupCityName string
	Destination    rates.Destination
	// Transfer applies to airport trips only; the airport name travels as a
	// PlaceDestination.
	Transfer   types.TransferDirection
	PickupDate time.Time
	ReturnDate time.Time
}

// Validate rejects a request before any resolution or calculation happens.
func (r TripRequest) Validate() error {
	if !r.TripType.Valid() || r.PickupCityID == "" || r.PickupDate.IsZero() {
		return ErrInvalidTrip
	}
	switch r.TripType {
	case types.TripRound, types.TripOneWay:
		switch r.Destination.(type) {
		case rates.CityDestination, rates.PlaceDestination:
		default:
			return ErrInvalidTrip
		}
	case types.TripLocal:
		if _, ok := r.Destination.(rates.PackageDestination); !ok {
			return ErrInvalidTrip
		}
	case types.TripAirport:
		d, ok := r.Destination.(rates.PlaceDestination)
		if !ok || d.Name == "" {
			return ErrInvalidTrip
		}
		if r.Transfer != types.TransferGoingTo && r.Transfer != types.TransferComingFrom {
			return ErrInvalidTrip
		}
	}
	return nil
}

// VehicleQuote is one priced card in the search results.
type VehicleQuote struct {
	Vehicle       catalog.Vehicle `json:"vehicle"`
	Rate          rates.RateCard  `json:"-"`
	RateID        types.ID        `json:"rate_id"`
	Fare          fare.Breakdown  `json:"fare"`
	AdvanceAmount float64         `json:"advance_amount"`
}

// SearchResult carries the priced cards plus trip-level context. An empty
// Quotes slice means "no vehicles available", not a failure.
type SearchResult struct {
	Duration        fare.Duration  `json:"duration"`
	Quotes          []VehicleQuote `json:"quotes"`
	DistanceWarning string         `json:"distance_warning,omitempty"`
}
