// README: Booking handlers; create, ticket view, and admin updates.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/modules/booking"
	"cabsafar/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
	quotes  *QuoteHandler
}

func NewBookingHandler(bookingSvc *booking.Service, quotes *QuoteHandler) *BookingHandler {
	return &BookingHandler{booking: bookingSvc, quotes: quotes}
}

type createBookingPayload struct {
	tripRequestPayload
	VehicleID          string `json:"vehicle_id"`
	AdditionalCityID   string `json:"additional_city_id"`
	UserName           string `json:"user_name"`
	UserEmail          string `json:"user_email"`
	UserPhone          string `json:"user_phone"`
	PickupAddress      string `json:"pickup_address"`
	DestinationAddress string `json:"destination_address"`
	NumberOfPersons    int    `json:"number_of_persons"`
	PickupTime         string `json:"pickup_time"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var p createBookingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	trip, ok := h.quotes.buildTripRequest(c, p.tripRequestPayload)
	if !ok {
		return
	}

	cmd := booking.CreateCommand{
		Trip:               trip,
		VehicleID:          types.ID(p.VehicleID),
		UserName:           p.UserName,
		UserEmail:          p.UserEmail,
		UserPhone:          p.UserPhone,
		PickupAddress:      p.PickupAddress,
		DestinationAddress: p.DestinationAddress,
		NumberOfPersons:    p.NumberOfPersons,
		PickupTime:         p.PickupTime,
	}
	if p.AdditionalCityID != "" {
		id := types.ID(p.AdditionalCityID)
		cmd.AdditionalCityID = &id
	}

	b, err := h.booking.Create(c.Request.Context(), cmd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) GetByTicket(c *gin.Context) {
	b, err := h.booking.GetByTicket(c.Request.Context(), c.Param("ticket"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.booking.List(c.Request.Context(), 100)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type adminUpdatePayload struct {
	BookingStatus *string  `json:"booking_status"`
	PaymentStatus *string  `json:"payment_status"`
	AdvancePaid   *bool    `json:"advance_paid"`
	TotalAmount   *float64 `json:"total_amount"`
}

func (h *BookingHandler) AdminUpdate(c *gin.Context) {
	var p adminUpdatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	cmd := booking.AdminUpdateCommand{
		BookingID:     types.ID(c.Param("id")),
		AdvancePaid:   p.AdvancePaid,
		TotalOverride: p.TotalAmount,
	}
	if p.BookingStatus != nil {
		s := booking.Status(*p.BookingStatus)
		cmd.Status = &s
	}
	if p.PaymentStatus != nil {
		s := booking.PaymentStatus(*p.PaymentStatus)
		cmd.Payment = &s
	}

	if err := h.booking.AdminUpdate(c.Request.Context(), cmd); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
