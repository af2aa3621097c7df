// README: Google Distance Matrix wrapper for road distances.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// DistanceService handles interactions with the Google Distance Matrix API.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// RoadDistanceKm returns the driving distance in kilometers between two
// free-text place names.
func (s *DistanceService) RoadDistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("distance matrix error: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("no route found")
	}
	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %s", elem.Status)
	}

	km := float64(elem.Distance.Meters) / 1000.0
	if km <= 0 {
		return 0, fmt.Errorf("non-positive distance %f", km)
	}
	return km, nil
}
