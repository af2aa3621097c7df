// README: Booking store backed by PostgreSQL; booking + sub-record in one transaction.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cabsafar/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CreateWithDetail inserts the booking and its trip-type sub-record
// atomically. Either both rows land or neither does.
func (s *Store) CreateWithDetail(ctx context.Context, b *Booking, detail TripDetail) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, ticket_id, user_name, user_email, user_phone,
			pickup_address, destination_address, number_of_persons,
			pickup_city_id, destination_city_id, additional_city_id, destination_name,
			vehicle_id, package_id, airport_name, trip_type,
			pickup_date, pickup_time, return_date, number_of_days,
			total_amount, advance_amount, advance_paid, booking_status, payment_status
		) VALUES (
			$1, 'CS-' || nextval('ticket_id_seq'), $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19,
			$20, $21, $22, $23, $24
		)
		RETURNING ticket_id, created_at`,
		string(b.ID), b.UserName, b.UserEmail, b.UserPhone,
		b.PickupAddress, b.DestinationAddress, b.NumberOfPersons,
		string(b.PickupCityID), idPtr(b.DestinationCityID), idPtr(b.AdditionalCityID), b.DestinationName,
		string(b.VehicleID), idPtr(b.PackageID), b.AirportName, string(b.TripType),
		b.PickupDate, b.PickupTime, b.ReturnDate, b.NumberOfDays,
		b.TotalAmount, b.AdvanceAmount, b.AdvancePaid, string(b.BookingStatus), string(b.PaymentStatus),
	)
	if err := row.Scan(&b.TicketID, &b.CreatedAt); err != nil {
		return err
	}

	if err := insertDetail(ctx, tx, detail); err != nil {
		return fmt.Errorf("trip detail: %w", err)
	}

	return tx.Commit(ctx)
}

func insertDetail(ctx context.Context, tx pgx.Tx, detail TripDetail) error {
	switch d := detail.(type) {
	case RoundTripDetail:
		_, err := tx.Exec(ctx, `
			INSERT INTO round_trip_bookings (booking_id, pickup_city_id, destination_city_id, additional_city_id, return_date)
			VALUES ($1, $2, $3, $4, $5)`,
			string(d.BookingID), string(d.PickupCityID), idPtr(d.DestinationCityID), idPtr(d.AdditionalCityID), d.ReturnDate)
		return err
	case OneWayTripDetail:
		_, err := tx.Exec(ctx, `
			INSERT INTO oneway_trip_bookings (booking_id, pickup_city_id, destination_city_id)
			VALUES ($1, $2, $3)`,
			string(d.BookingID), string(d.PickupCityID), idPtr(d.DestinationCityID))
		return err
	case LocalTripDetail:
		_, err := tx.Exec(ctx, `
			INSERT INTO local_trip_bookings (booking_id, pickup_city_id, package_id)
			VALUES ($1, $2, $3)`,
			string(d.BookingID), string(d.PickupCityID), string(d.PackageID))
		return err
	case AirportTripDetail:
		_, err := tx.Exec(ctx, `
			INSERT INTO airport_trip_bookings (booking_id, pickup_city_id, airport_name, transfer_type)
			VALUES ($1, $2, $3, $4)`,
			string(d.BookingID), string(d.PickupCityID), d.AirportName, string(d.Transfer))
		return err
	}
	return fmt.Errorf("unknown trip detail %T", detail)
}

const bookingColumns = `
	id, ticket_id, user_name, user_email, user_phone,
	pickup_address, destination_address, COALESCE(number_of_persons, 1),
	pickup_city_id, destination_city_id, additional_city_id, destination_name,
	vehicle_id, package_id, airport_name, trip_type,
	pickup_date, pickup_time, return_date, number_of_days,
	total_amount, COALESCE(advance_amount, 0), COALESCE(advance_paid, FALSE),
	booking_status, payment_status, created_at`

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, string(id))
	return scanBooking(row)
}

func (s *Store) GetByTicket(ctx context.Context, ticketID string) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE ticket_id = $1`, ticketID)
	return scanBooking(row)
}

// List returns recent bookings for the back office, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// UpdateAdmin applies back-office edits. A nil field leaves the column
// untouched. A total override deliberately does not recompute the advance.
func (s *Store) UpdateAdmin(ctx context.Context, id types.ID, status *Status, payment *PaymentStatus, advancePaid *bool, totalOverride *float64) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET booking_status = COALESCE($2, booking_status),
		    payment_status = COALESCE($3, payment_status),
		    advance_paid = COALESCE($4, advance_paid),
		    total_amount = COALESCE($5, total_amount),
		    updated_at = NOW()
		WHERE id = $1`,
		string(id), statusPtr(status), paymentPtr(payment), advancePaid, totalOverride)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var destCityID, additionalCityID, packageID *string
	err := row.Scan(
		&b.ID, &b.TicketID, &b.UserName, &b.UserEmail, &b.UserPhone,
		&b.PickupAddress, &b.DestinationAddress, &b.NumberOfPersons,
		&b.PickupCityID, &destCityID, &additionalCityID, &b.DestinationName,
		&b.VehicleID, &packageID, &b.AirportName, &b.TripType,
		&b.PickupDate, &b.PickupTime, &b.ReturnDate, &b.NumberOfDays,
		&b.TotalAmount, &b.AdvanceAmount, &b.AdvancePaid,
		&b.BookingStatus, &b.PaymentStatus, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.DestinationCityID = toID(destCityID)
	b.AdditionalCityID = toID(additionalCityID)
	b.PackageID = toID(packageID)
	return &b, nil
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func toID(v *string) *types.ID {
	if v == nil {
		return nil
	}
	id := types.ID(*v)
	return &id
}

func statusPtr(v *Status) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func paymentPtr(v *PaymentStatus) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
