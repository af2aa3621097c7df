// README: Lead handlers; public capture and admin workflow.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/modules/leads"
	"cabsafar/internal/types"
)

type LeadsHandler struct {
	leads *leads.Service
}

func NewLeadsHandler(svc *leads.Service) *LeadsHandler {
	return &LeadsHandler{leads: svc}
}

type capturePayload struct {
	MobileNumber      string `json:"mobile_number"`
	PickupCityID      string `json:"pickup_city_id"`
	DestinationCityID string `json:"destination_city_id"`
	TripType          string `json:"trip_type"`
	PickupDate        string `json:"pickup_date"`
	ReturnDate        string `json:"return_date"`
	VehicleName       string `json:"vehicle_name"`
	LeadSource        string `json:"lead_source"`
	CouponRequested   bool   `json:"coupon_requested"`
}

func (h *LeadsHandler) Capture(c *gin.Context) {
	var p capturePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	l := leads.Lead{
		MobileNumber:    p.MobileNumber,
		TripType:        types.TripType(p.TripType),
		VehicleName:     p.VehicleName,
		LeadSource:      p.LeadSource,
		CouponRequested: p.CouponRequested,
	}
	if p.PickupCityID != "" {
		id := types.ID(p.PickupCityID)
		l.PickupCityID = &id
	}
	if p.DestinationCityID != "" {
		id := types.ID(p.DestinationCityID)
		l.DestinationCityID = &id
	}
	if t, err := parseDate(p.PickupDate); err == nil && !t.IsZero() {
		l.PickupDate = &t
	}
	if t, err := parseDate(p.ReturnDate); err == nil && !t.IsZero() {
		l.ReturnDate = &t
	}

	created, err := h.leads.Capture(c.Request.Context(), l)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LeadsHandler) List(c *gin.Context) {
	out, err := h.leads.List(c.Request.Context(), 100)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": out})
}

type leadUpdatePayload struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *LeadsHandler) Update(c *gin.Context) {
	var p leadUpdatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.leads.UpdateStatus(c.Request.Context(), types.ID(c.Param("id")), leads.LeadStatus(p.Status), p.Notes)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
