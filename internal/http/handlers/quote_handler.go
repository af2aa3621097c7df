// README: Quote handler; turns a search form payload into priced vehicle cards.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/quote"
	"cabsafar/internal/modules/rates"
	"cabsafar/internal/types"
)

type QuoteHandler struct {
	quote   *quote.Service
	catalog *catalog.Service
}

func NewQuoteHandler(quoteSvc *quote.Service, catalogSvc *catalog.Service) *QuoteHandler {
	return &QuoteHandler{quote: quoteSvc, catalog: catalogSvc}
}

type tripRequestPayload struct {
	TripType          string `json:"trip_type"`
	PickupCityID      string `json:"pickup_city_id"`
	DestinationCityID string `json:"destination_city_id"`
	DestinationName   string `json:"destination_name"`
	PackageID         string `json:"package_id"`
	AirportName       string `json:"airport_name"`
	TransferType      string `json:"transfer_type"`
	PickupDate        string `json:"pickup_date"`
	ReturnDate        string `json:"return_date"`
}

// buildTripRequest decides the destination variant at the boundary: a known
// catalog city becomes a CityDestination, anything else stays a free place.
func (h *QuoteHandler) buildTripRequest(c *gin.Context, p tripRequestPayload) (quote.TripRequest, bool) {
	pickupDate, err := parseDate(p.PickupDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid pickup_date")
		return quote.TripRequest{}, false
	}
	returnDate, err := parseDate(p.ReturnDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid return_date")
		return quote.TripRequest{}, false
	}

	req := quote.TripRequest{
		TripType:     types.TripType(p.TripType),
		PickupCityID: types.ID(p.PickupCityID),
		Transfer:     types.TransferDirection(p.TransferType),
		PickupDate:   pickupDate,
		ReturnDate:   returnDate,
	}

	if p.PickupCityID != "" {
		city, err := h.catalog.City(c.Request.Context(), types.ID(p.PickupCityID))
		if err != nil {
			writeServiceError(c, err)
			return quote.TripRequest{}, false
		}
		if city == nil {
			writeError(c, http.StatusBadRequest, "unknown pickup city")
			return quote.TripRequest{}, false
		}
		req.PickupCityName = city.Name
	}

	switch {
	case p.PackageID != "":
		req.Destination = rates.PackageDestination{PackageID: types.ID(p.PackageID)}
	case p.AirportName != "":
		req.Destination = rates.PlaceDestination{Name: p.AirportName}
	case p.DestinationCityID != "":
		city, err := h.catalog.City(c.Request.Context(), types.ID(p.DestinationCityID))
		if err != nil {
			writeServiceError(c, err)
			return quote.TripRequest{}, false
		}
		if city != nil {
			req.Destination = rates.CityDestination{CityID: city.ID, Name: city.Name}
		} else if p.DestinationName != "" {
			req.Destination = rates.PlaceDestination{Name: p.DestinationName}
		}
	case p.DestinationName != "":
		req.Destination = rates.PlaceDestination{Name: p.DestinationName}
	}

	return req, true
}

func (h *QuoteHandler) Search(c *gin.Context) {
	var p tripRequestPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req, ok := h.buildTripRequest(c, p)
	if !ok {
		return
	}

	result, err := h.quote.Search(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
