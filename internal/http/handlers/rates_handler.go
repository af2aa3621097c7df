// README: Admin rate handlers; route-specific and common rate sheets.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cabsafar/internal/modules/rates"
	"cabsafar/internal/types"
)

type RatesHandler struct {
	store *rates.Store
}

func NewRatesHandler(store *rates.Store) *RatesHandler {
	return &RatesHandler{store: store}
}

type ratePayload struct {
	ID                 string  `json:"id"`
	PickupCityID       string  `json:"pickup_city_id"`
	DestinationCityID  string  `json:"destination_city_id"`
	VehicleID          string  `json:"vehicle_id"`
	PackageID          string  `json:"package_id"`
	TripType           string  `json:"trip_type"`
	DailyKmLimit       float64 `json:"daily_km_limit"`
	PerKmCharge        float64 `json:"per_km_charges"`
	ExtraPerKmCharge   float64 `json:"extra_per_km_charge"`
	ExtraPerHourCharge float64 `json:"extra_per_hour_charge"`
	DayDriverAllowance float64 `json:"day_driver_allowance"`
	NightCharge        float64 `json:"night_charge"`
	BaseFare           float64 `json:"base_fare"`
	TotalRunningKm     float64 `json:"total_running_km"`
}

func (p ratePayload) toCard() (*rates.RateCard, bool) {
	if p.PickupCityID == "" || p.VehicleID == "" || !types.TripType(p.TripType).Valid() {
		return nil, false
	}
	if p.DailyKmLimit < 0 || p.PerKmCharge < 0 || p.ExtraPerKmCharge < 0 ||
		p.DayDriverAllowance < 0 || p.NightCharge < 0 || p.BaseFare < 0 || p.TotalRunningKm < 0 {
		return nil, false
	}

	r := &rates.RateCard{
		ID:                 types.ID(p.ID),
		PickupCityID:       types.ID(p.PickupCityID),
		VehicleID:          types.ID(p.VehicleID),
		TripType:           types.TripType(p.TripType),
		DailyKmLimit:       p.DailyKmLimit,
		PerKmCharge:        p.PerKmCharge,
		ExtraPerKmCharge:   p.ExtraPerKmCharge,
		ExtraPerHourCharge: p.ExtraPerHourCharge,
		DayDriverAllowance: p.DayDriverAllowance,
		NightCharge:        p.NightCharge,
		BaseFare:           p.BaseFare,
		TotalRunningKm:     p.TotalRunningKm,
	}
	if r.ID == "" {
		r.ID = types.ID(uuid.NewString())
	}
	if p.DestinationCityID != "" {
		id := types.ID(p.DestinationCityID)
		r.DestinationCityID = &id
	}
	if p.PackageID != "" {
		id := types.ID(p.PackageID)
		r.PackageID = &id
	}
	return r, true
}

func (h *RatesHandler) UpsertRouteRate(c *gin.Context) {
	var p ratePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	r, ok := p.toCard()
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid rate")
		return
	}
	// A route rate needs either a destination or a package to be resolvable.
	if r.DestinationCityID == nil && r.PackageID == nil {
		writeError(c, http.StatusBadRequest, "destination_city_id or package_id required")
		return
	}
	if err := h.store.UpsertRouteRate(c.Request.Context(), r); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": r.ID})
}

func (h *RatesHandler) UpsertCommonRate(c *gin.Context) {
	var p ratePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	r, ok := p.toCard()
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid rate")
		return
	}
	if err := h.store.UpsertCommonRate(c.Request.Context(), r); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": r.ID})
}

func (h *RatesHandler) DeleteRouteRate(c *gin.Context) {
	if err := h.store.DeactivateRouteRate(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

func (h *RatesHandler) DeleteCommonRate(c *gin.Context) {
	if err := h.store.DeactivateCommonRate(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
