// README: Google Places wrapper for autocomplete and place details.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Prediction is a simplified autocomplete result.
type Prediction struct {
	Description string
	PlaceID     string
	MainText    string
}

// PlaceDetail holds the resolved name and address for a place id.
type PlaceDetail struct {
	Name    string
	Address string
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Autocomplete returns city-biased predictions for a partial place name.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	r := &maps.PlaceAutocompleteRequest{
		Input:    input,
		Language: "en",
		Types:    maps.AutocompletePlaceTypeCities,
		Components: map[maps.Component][]string{
			maps.ComponentCountry: {"in"},
		},
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places autocomplete error: %w", err)
	}

	preds := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		preds = append(preds, Prediction{
			Description: p.Description,
			PlaceID:     p.PlaceID,
			MainText:    p.StructuredFormatting.MainText,
		})
	}
	return preds, nil
}

// Detail resolves a place id to its display name and formatted address.
func (s *PlacesService) Detail(ctx context.Context, placeID string) (PlaceDetail, error) {
	r := &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskName, maps.PlaceDetailsFieldMaskFormattedAddress},
	}

	resp, err := s.client.PlaceDetails(ctx, r)
	if err != nil {
		return PlaceDetail{}, fmt.Errorf("place details error: %w", err)
	}
	return PlaceDetail{Name: resp.Name, Address: resp.FormattedAddress}, nil
}
