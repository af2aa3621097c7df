// README: Place handlers; autocomplete flagged against catalog cities, plus details.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mapssvc "cabsafar/internal/maps"
	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/distance"
)

// PlaceSource is the Google-backed suggestion and details source
// (implemented by *maps.PlacesService).
type PlaceSource interface {
	Autocomplete(ctx context.Context, input string) ([]mapssvc.Prediction, error)
	Detail(ctx context.Context, placeID string) (mapssvc.PlaceDetail, error)
}

type PlacesHandler struct {
	places  PlaceSource
	catalog *catalog.Service
}

// NewPlacesHandler accepts a nil place source when no maps key is
// configured; autocomplete then matches catalog cities only and details
// are unavailable.
func NewPlacesHandler(places PlaceSource, catalogSvc *catalog.Service) *PlacesHandler {
	return &PlacesHandler{places: places, catalog: catalogSvc}
}

type placeSuggestion struct {
	Name    string `json:"name"`
	PlaceID string `json:"place_id,omitempty"`
	// CityID is set when the suggestion matches a catalog city; such
	// destinations can carry route-specific rates.
	CityID string `json:"city_id,omitempty"`
}

func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		writeError(c, http.StatusBadRequest, "query too short")
		return
	}

	cities, err := h.catalog.Cities(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// Catalog cities keyed by normalized name, so a prediction like
	// "Varanasi Cantt" still resolves to the Varanasi catalog entry.
	cityByKey := make(map[string]catalog.City, len(cities))
	for _, city := range cities {
		cityByKey[distance.NormalizeCity(city.Name)] = city
	}

	var suggestions []placeSuggestion
	seen := map[string]bool{}
	for _, city := range cities {
		if strings.HasPrefix(strings.ToLower(city.Name), strings.ToLower(q)) {
			suggestions = append(suggestions, placeSuggestion{Name: city.Name, CityID: string(city.ID)})
			seen[strings.ToLower(city.Name)] = true
		}
	}

	if h.places != nil {
		preds, err := h.places.Autocomplete(c.Request.Context(), q)
		if err == nil {
			for _, p := range preds {
				if seen[strings.ToLower(p.MainText)] {
					continue
				}
				s := placeSuggestion{Name: p.Description, PlaceID: p.PlaceID}
				if city, ok := cityByKey[distance.NormalizeCity(p.MainText)]; ok {
					s.CityID = string(city.ID)
				}
				suggestions = append(suggestions, s)
			}
		}
		// Autocomplete failures are non-fatal; catalog matches still serve.
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Detail resolves a selected prediction to its display name and address.
func (h *PlacesHandler) Detail(c *gin.Context) {
	placeID := strings.TrimSpace(c.Query("place_id"))
	if placeID == "" {
		writeError(c, http.StatusBadRequest, "place_id required")
		return
	}
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "place details unavailable")
		return
	}

	d, err := h.places.Detail(c.Request.Context(), placeID)
	if err != nil {
		writeError(c, http.StatusBadGateway, "place lookup failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": d.Name, "address": d.Address})
}
