// README: Booking aggregate, status definitions, and trip-type sub-records.
package booking

import (
	"time"

	"cabsafar/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking is the committed outcome of a confirmed trip. TotalAmount and
// AdvanceAmount are snapshots taken at creation; later admin edits to the
// total never recompute the advance.
type Booking struct {
	ID                 types.ID          `json:"id"`
	TicketID           string            `json:"ticket_id"`
	UserName           *string           `json:"user_name,omitempty"`
	UserEmail          *string           `json:"user_email,omitempty"`
	UserPhone          string            `json:"user_phone"`
	PickupAddress      *string           `json:"pickup_address,omitempty"`
	DestinationAddress *string           `json:"destination_address,omitempty"`
	NumberOfPersons    int               `json:"number_of_persons"`
	PickupCityID       types.ID          `json:"pickup_city_id"`
	DestinationCityID  *types.ID         `json:"destination_city_id,omitempty"`
	AdditionalCityID   *types.ID         `json:"additional_city_id,omitempty"`
	DestinationName    *string           `json:"destination_name,omitempty"`
	VehicleID          types.ID          `json:"vehicle_id"`
	PackageID          *types.ID         `json:"package_id,omitempty"`
	AirportName        *string           `json:"airport_name,omitempty"`
	TripType           types.TripType    `json:"trip_type"`
	PickupDate         time.Time         `json:"pickup_date"`
	PickupTime         string            `json:"pickup_time"`
	ReturnDate         *time.Time        `json:"return_date,omitempty"`
	NumberOfDays       int               `json:"number_of_days"`
	TotalAmount        float64           `json:"total_amount"`
	AdvanceAmount      float64           `json:"advance_amount"`
	AdvancePaid        bool              `json:"advance_paid"`
	BookingStatus      Status            `json:"booking_status"`
	PaymentStatus      PaymentStatus     `json:"payment_status"`
	CreatedAt          time.Time         `json:"created_at"`
}

// TripDetail is the trip-type-specific sub-record owned by a booking.
// Exactly one is written, in the same transaction as the booking row.
type TripDetail interface {
	tripDetail()
}

type RoundTripDetail struct {
	BookingID         types.ID
	PickupCityID      types.ID
	DestinationCityID *types.ID
	AdditionalCityID  *types.ID
	ReturnDate        *time.Time
}

type OneWayTripDetail struct {
	BookingID         types.ID
	PickupCityID      types.ID
	DestinationCityID *types.ID
}

type LocalTripDetail struct {
	BookingID    types.ID
	PickupCityID types.ID
	PackageID    types.ID
}

type AirportTripDetail struct {
	BookingID    types.ID
	PickupCityID types.ID
	AirportName  string
	Transfer     types.TransferDirection
}

func (RoundTripDetail) tripDetail()   {}
func (OneWayTripDetail) tripDetail()  {}
func (LocalTripDetail) tripDetail()   {}
func (AirportTripDetail) tripDetail() {}
