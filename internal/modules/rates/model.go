// README: Rate card model and the destination variants it is resolved against.
package rates

import "cabsafar/internal/types"

// Destination is the closed set of things a trip can point at: a city we
// price routes to, an arbitrary geocoded place, or a local package.
type Destination interface {
	destination()
}

// CityDestination is a city present in our catalog.
type CityDestination struct {
	CityID types.ID
	Name   string
}

// PlaceDestination is a free-text or geocoded place with no catalog entry.
// It never matches a route-specific rate.
type PlaceDestination struct {
	Name string
}

// PackageDestination selects a local package (e.g. 8hr/80km).
type PackageDestination struct {
	PackageID types.ID
}

func (CityDestination) destination()    {}
func (PlaceDestination) destination()   {}
func (PackageDestination) destination() {}

// Source records which lookup produced a rate card.
type Source string

const (
	// SourceRoute is an exact (pickup, destination, vehicle, trip type) rate;
	// its TotalRunningKm is authoritative.
	SourceRoute Source = "route"
	// SourceCommon is a city-level rate combined with a resolved distance.
	SourceCommon Source = "common"
)

// RateCard is the normalized priced terms for one vehicle on one trip.
// Route-specific and common rates both resolve into this shape.
type RateCard struct {
	ID                 types.ID
	PickupCityID       types.ID
	DestinationCityID  *types.ID
	VehicleID          types.ID
	PackageID          *types.ID
	TripType           types.TripType
	DailyKmLimit       float64
	PerKmCharge        float64
	ExtraPerKmCharge   float64
	ExtraPerHourCharge float64
	DayDriverAllowance float64
	NightCharge        float64
	BaseFare           float64
	TotalRunningKm     float64
	Source             Source
	// DistanceWarning surfaces that TotalRunningKm came from an estimated
	// distance rather than a live lookup.
	DistanceWarning string
}
