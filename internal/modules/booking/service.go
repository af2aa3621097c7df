// README: Booking service; assembles trip, rate, and fare into a persisted booking.
package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cabsafar/internal/modules/fare"
	"cabsafar/internal/modules/quote"
	"cabsafar/internal/modules/rates"
	"cabsafar/internal/types"
)

var (
	ErrNotFound   = errors.New("booking not found")
	ErrBadRequest = errors.New("bad request")
	ErrNoRate     = errors.New("no rate available for this trip")
)

// BookingWriter abstracts the store for tests.
type BookingWriter interface {
	CreateWithDetail(ctx context.Context, b *Booking, detail TripDetail) error
	Get(ctx context.Context, id types.ID) (*Booking, error)
	GetByTicket(ctx context.Context, ticketID string) (*Booking, error)
	List(ctx context.Context, limit int) ([]Booking, error)
	UpdateAdmin(ctx context.Context, id types.ID, status *Status, payment *PaymentStatus, advancePaid *bool, totalOverride *float64) (bool, error)
}

// RateResolver re-prices the trip server-side; client-sent totals are never
// trusted.
type RateResolver interface {
	Resolve(ctx context.Context, q rates.Query) (*rates.RateCard, error)
}

type Service struct {
	store BookingWriter
	rates RateResolver
}

func NewService(store BookingWriter, rateResolver RateResolver) *Service {
	return &Service{store: store, rates: rateResolver}
}

type CreateCommand struct {
	Trip               quote.TripRequest
	VehicleID          types.ID
	AdditionalCityID   *types.ID
	UserName           string
	UserEmail          string
	UserPhone          string
	PickupAddress      string
	DestinationAddress string
	NumberOfPersons    int
	PickupTime         string
}

// Create validates the command, re-resolves the rate, recomputes the fare,
// and persists the booking together with its trip-type sub-record in one
// transaction.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.VehicleID == "" || cmd.UserPhone == "" {
		return nil, ErrBadRequest
	}
	trip := inferTripType(cmd.Trip)
	if err := trip.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	rate, err := s.rates.Resolve(ctx, rates.Query{
		PickupCityID:   trip.PickupCityID,
		PickupCityName: trip.PickupCityName,
		Destination:    trip.Destination,
		VehicleID:      cmd.VehicleID,
		TripType:       trip.TripType,
	})
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, ErrNoRate
	}

	duration := fare.CalculateDaysAndNights(trip.PickupDate, trip.ReturnDate)
	breakdown := fare.CalculateBreakdown(*rate, duration)

	b := &Booking{
		ID:              types.ID(uuid.NewString()),
		UserPhone:       cmd.UserPhone,
		NumberOfPersons: cmd.NumberOfPersons,
		PickupCityID:    trip.PickupCityID,
		VehicleID:       cmd.VehicleID,
		TripType:        trip.TripType,
		PickupDate:      trip.PickupDate,
		PickupTime:      normalizePickupTime(cmd.PickupTime),
		NumberOfDays:    duration.Days,
		TotalAmount:     breakdown.Total,
		// Frozen here; later total edits are manual overrides and never
		// recompute this.
		AdvanceAmount:    breakdown.Total * fare.AdvanceRate,
		AdditionalCityID: cmd.AdditionalCityID,
		BookingStatus:    StatusPending,
		PaymentStatus:    PaymentPending,
	}
	if b.NumberOfPersons <= 0 {
		b.NumberOfPersons = 1
	}
	if cmd.UserName != "" {
		b.UserName = &cmd.UserName
	}
	if cmd.UserEmail != "" {
		b.UserEmail = &cmd.UserEmail
	}
	if cmd.PickupAddress != "" {
		b.PickupAddress = &cmd.PickupAddress
	}
	if cmd.DestinationAddress != "" {
		b.DestinationAddress = &cmd.DestinationAddress
	}
	if !trip.ReturnDate.IsZero() {
		d := trip.ReturnDate
		b.ReturnDate = &d
	}

	applyDestination(b, trip)

	return b, s.store.CreateWithDetail(ctx, b, buildDetail(b, trip))
}

// inferTripType treats any point-to-point trip with a return leg as a round
// trip, whatever tab the search started from.
func inferTripType(trip quote.TripRequest) quote.TripRequest {
	switch trip.TripType {
	case types.TripRound, types.TripOneWay:
		if trip.ReturnDate.IsZero() {
			trip.TripType = types.TripOneWay
		} else {
			trip.TripType = types.TripRound
		}
	}
	return trip
}

// applyDestination maps the destination variant onto booking columns. Free
// places keep a null destination city; only the display name is stored.
func applyDestination(b *Booking, trip quote.TripRequest) {
	switch d := trip.Destination.(type) {
	case rates.CityDestination:
		id := d.CityID
		b.DestinationCityID = &id
		if d.Name != "" {
			name := d.Name
			b.DestinationName = &name
		}
	case rates.PlaceDestination:
		name := d.Name
		b.DestinationName = &name
		if trip.TripType == types.TripAirport {
			b.AirportName = &name
		}
	case rates.PackageDestination:
		id := d.PackageID
		b.PackageID = &id
	}
}

func buildDetail(b *Booking, trip quote.TripRequest) TripDetail {
	switch trip.TripType {
	case types.TripOneWay:
		return OneWayTripDetail{
			BookingID:         b.ID,
			PickupCityID:      b.PickupCityID,
			DestinationCityID: b.DestinationCityID,
		}
	case types.TripLocal:
		var pkg types.ID
		if b.PackageID != nil {
			pkg = *b.PackageID
		}
		return LocalTripDetail{
			BookingID:    b.ID,
			PickupCityID: b.PickupCityID,
			PackageID:    pkg,
		}
	case types.TripAirport:
		var airport string
		if b.AirportName != nil {
			airport = *b.AirportName
		}
		return AirportTripDetail{
			BookingID:    b.ID,
			PickupCityID: b.PickupCityID,
			AirportName:  airport,
			Transfer:     trip.Transfer,
		}
	default:
		return RoundTripDetail{
			BookingID:         b.ID,
			PickupCityID:      b.PickupCityID,
			DestinationCityID: b.DestinationCityID,
			AdditionalCityID:  b.AdditionalCityID,
			ReturnDate:        b.ReturnDate,
		}
	}
}

func normalizePickupTime(v string) string {
	if v == "" {
		return "09:00:00"
	}
	if len(v) == 5 { // "HH:MM"
		return v + ":00"
	}
	return v
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) GetByTicket(ctx context.Context, ticketID string) (*Booking, error) {
	if ticketID == "" {
		return nil, ErrBadRequest
	}
	return s.store.GetByTicket(ctx, ticketID)
}

func (s *Service) List(ctx context.Context, limit int) ([]Booking, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.List(ctx, limit)
}

type AdminUpdateCommand struct {
	BookingID     types.ID
	Status        *Status
	Payment       *PaymentStatus
	AdvancePaid   *bool
	TotalOverride *float64
}

func (s *Service) AdminUpdate(ctx context.Context, cmd AdminUpdateCommand) error {
	if cmd.BookingID == "" {
		return ErrBadRequest
	}
	if cmd.TotalOverride != nil && *cmd.TotalOverride < 0 {
		return ErrBadRequest
	}
	ok, err := s.store.UpdateAdmin(ctx, cmd.BookingID, cmd.Status, cmd.Payment, cmd.AdvancePaid, cmd.TotalOverride)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
