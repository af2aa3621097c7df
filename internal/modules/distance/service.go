// README: Distance resolver; live road distance with a static estimate fallback.
package distance

import (
	"context"
	"log"
)

// Result always carries a usable positive distance. Warning is set whenever
// the value is an estimate rather than a live road distance.
type Result struct {
	Km      float64 `json:"distance_km"`
	Warning string  `json:"warning,omitempty"`
	Err     string  `json:"error,omitempty"`
}

// RoadDistance is the live distance source (Google Distance Matrix in prod).
type RoadDistance interface {
	RoadDistanceKm(ctx context.Context, origin, destination string) (float64, error)
}

type Service struct {
	road RoadDistance
}

// NewService creates a resolver. road may be nil when no API key is
// configured; every lookup then uses the static table.
func NewService(road RoadDistance) *Service {
	return &Service{road: road}
}

// Resolve returns the road distance between two place names. A quote must
// never block on a maps outage, so any failure degrades to the static
// city-pair table with a visible warning instead of an error.
func (s *Service) Resolve(ctx context.Context, pickup, destination string) Result {
	if s.road == nil {
		return Result{
			Km:      fallbackKm(pickup, destination),
			Warning: "distance service not configured - using estimated distance",
		}
	}

	km, err := s.road.RoadDistanceKm(ctx, pickup, destination)
	if err == nil && km > 0 {
		return Result{Km: km}
	}

	res := Result{
		Km:      fallbackKm(pickup, destination),
		Warning: "using estimated distance due to calculation error",
	}
	if err != nil {
		log.Printf("distance lookup %q -> %q failed: %v", pickup, destination, err)
		res.Err = err.Error()
	}
	return res
}
