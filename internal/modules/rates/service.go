// README: Rate resolver; route rate, then package rate, then common rate plus distance.
package rates

import (
	"context"
	"errors"
	"fmt"

	"cabsafar/internal/modules/distance"
	"cabsafar/internal/types"
)

var ErrBadQuery = errors.New("invalid rate query")

// defaultEstimateKm is used on the common-rate path when no place names are
// available to resolve a distance against.
const defaultEstimateKm = 300

// RateSource abstracts the rate tables (implemented by *Store).
type RateSource interface {
	FindRouteRate(ctx context.Context, pickupCityID, destCityID, vehicleID types.ID, tripType types.TripType) (*RateCard, error)
	FindPackageRate(ctx context.Context, pickupCityID, packageID, vehicleID types.ID) (*RateCard, error)
	FindCommonRate(ctx context.Context, pickupCityID, vehicleID types.ID, tripType types.TripType) (*RateCard, error)
}

// DistanceResolver is the fallback distance source for common rates.
type DistanceResolver interface {
	Resolve(ctx context.Context, pickup, destination string) distance.Result
}

type Service struct {
	src      RateSource
	distance DistanceResolver
	cache    *Cache
}

// NewService creates a resolver. cache may be nil to disable memoization.
func NewService(src RateSource, distance DistanceResolver, cache *Cache) *Service {
	return &Service{src: src, distance: distance, cache: cache}
}

// Query identifies one (pickup, destination, vehicle, trip type) pricing
// request. PickupCityName feeds distance estimation on the common-rate path.
type Query struct {
	PickupCityID   types.ID
	PickupCityName string
	Destination    Destination
	VehicleID      types.ID
	TripType       types.TripType
}

// CacheKey is the composite memoization key for this query.
func (q Query) CacheKey() string {
	var dest string
	switch d := q.Destination.(type) {
	case CityDestination:
		dest = "city:" + string(d.CityID)
	case PlaceDestination:
		dest = "place:" + d.Name
	case PackageDestination:
		dest = "pkg:" + string(d.PackageID)
	}
	return fmt.Sprintf("rates:%s:%s:%s:%s", q.PickupCityID, dest, q.VehicleID, q.TripType)
}

// Resolve returns the applicable rate card for a query, or (nil, nil) when no
// rate of any kind is configured ("no offer" rather than a failure).
//
// Precedence: exact route rate, then local package rate, then the city-level
// common rate combined with a resolved distance. Place destinations never
// match route rates.
func (s *Service) Resolve(ctx context.Context, q Query) (*RateCard, error) {
	if q.PickupCityID == "" || q.VehicleID == "" || !q.TripType.Valid() {
		return nil, ErrBadQuery
	}

	if s.cache != nil {
		if rate, ok := s.cache.Get(ctx, q.CacheKey()); ok {
			return rate, nil
		}
	}

	rate, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}
	if rate != nil && s.cache != nil {
		s.cache.Put(ctx, q.CacheKey(), rate)
	}
	return rate, nil
}

func (s *Service) resolve(ctx context.Context, q Query) (*RateCard, error) {
	switch d := q.Destination.(type) {
	case PackageDestination:
		if q.TripType != types.TripLocal {
			return nil, ErrBadQuery
		}
		return s.src.FindPackageRate(ctx, q.PickupCityID, d.PackageID, q.VehicleID)

	case CityDestination:
		if q.TripType == types.TripLocal {
			return nil, ErrBadQuery
		}
		rate, err := s.src.FindRouteRate(ctx, q.PickupCityID, d.CityID, q.VehicleID, q.TripType)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			return rate, nil
		}
		return s.commonWithDistance(ctx, q, d.Name)

	case PlaceDestination:
		return s.commonWithDistance(ctx, q, d.Name)
	}
	return nil, ErrBadQuery
}

// commonWithDistance normalizes a common rate into a full rate card by
// attaching an estimated total running distance.
func (s *Service) commonWithDistance(ctx context.Context, q Query, destName string) (*RateCard, error) {
	rate, err := s.src.FindCommonRate(ctx, q.PickupCityID, q.VehicleID, q.TripType)
	if err != nil || rate == nil {
		return nil, err
	}

	km := float64(defaultEstimateKm)
	warning := "using default distance"
	if q.PickupCityName != "" && destName != "" {
		res := s.distance.Resolve(ctx, q.PickupCityName, destName)
		km = res.Km
		warning = res.Warning
	}

	if q.TripType == types.TripRound {
		rate.TotalRunningKm = km * 2
	} else {
		rate.TotalRunningKm = km
	}
	rate.DistanceWarning = warning
	return rate, nil
}
