// README: Lead store backed by PostgreSQL.
package leads

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cabsafar/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, l *Lead) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO leads (
			id, mobile_number, pickup_city_id, destination_city_id, trip_type,
			pickup_date, return_date, vehicle_name, lead_source, coupon_requested, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		string(l.ID), l.MobileNumber, idPtr(l.PickupCityID), idPtr(l.DestinationCityID), string(l.TripType),
		l.PickupDate, l.ReturnDate, l.VehicleName, l.LeadSource, l.CouponRequested, string(l.Status), l.Notes)
	return err
}

func (s *Store) List(ctx context.Context, limit int) ([]Lead, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, mobile_number, pickup_city_id, destination_city_id, COALESCE(trip_type, ''),
		       pickup_date, return_date, COALESCE(vehicle_name, ''), COALESCE(lead_source, ''),
		       COALESCE(coupon_requested, FALSE), COALESCE(status, 'new'), notes, contacted_at, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		var pickupCityID, destCityID *string
		if err := rows.Scan(
			&l.ID, &l.MobileNumber, &pickupCityID, &destCityID, &l.TripType,
			&l.PickupDate, &l.ReturnDate, &l.VehicleName, &l.LeadSource,
			&l.CouponRequested, &l.Status, &l.Notes, &l.ContactedAt, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		l.PickupCityID = toID(pickupCityID)
		l.DestinationCityID = toID(destCityID)
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateStatus moves a lead along the contact workflow; marking it contacted
// stamps contacted_at once.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status LeadStatus, notes *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE leads
		SET status = $2,
		    notes = COALESCE($3, notes),
		    contacted_at = CASE WHEN $2 = 'contacted' AND contacted_at IS NULL THEN NOW() ELSE contacted_at END,
		    updated_at = NOW()
		WHERE id = $1`,
		string(id), string(status), notes)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
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
