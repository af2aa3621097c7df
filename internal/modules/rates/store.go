// README: Rate store backed by PostgreSQL; route, package, and common lookups.
package rates

import (
	"context"
	"errors"

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

const rateColumns = `
	id, pickup_city_id, destination_city_id, vehicle_id, package_id, trip_type,
	daily_km_limit, per_km_charges, extra_per_km_charge, extra_per_hour_charge,
	day_driver_allowance, night_charge, COALESCE(base_fare, 0), total_running_km`

// FindRouteRate looks up an exact route rate. Returns (nil, nil) when none is
// configured for the key.
func (s *Store) FindRouteRate(ctx context.Context, pickupCityID, destCityID, vehicleID types.ID, tripType types.TripType) (*RateCard, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+rateColumns+`
		FROM vehicle_rates
		WHERE pickup_city_id = $1
		  AND destination_city_id = $2
		  AND vehicle_id = $3
		  AND trip_type = $4
		  AND is_active`,
		string(pickupCityID), string(destCityID), string(vehicleID), string(tripType),
	)
	return scanRate(row, SourceRoute)
}

// FindPackageRate looks up the local-package rate for a vehicle.
func (s *Store) FindPackageRate(ctx context.Context, pickupCityID, packageID, vehicleID types.ID) (*RateCard, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+rateColumns+`
		FROM vehicle_rates
		WHERE pickup_city_id = $1
		  AND package_id = $2
		  AND vehicle_id = $3
		  AND trip_type = 'local'
		  AND is_active`,
		string(pickupCityID), string(packageID), string(vehicleID),
	)
	return scanRate(row, SourceRoute)
}

// FindCommonRate looks up the city-level rate for a vehicle and trip type.
// Common rates carry no distance; the resolver fills TotalRunningKm in.
func (s *Store) FindCommonRate(ctx context.Context, pickupCityID, vehicleID types.ID, tripType types.TripType) (*RateCard, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, pickup_city_id, NULL::text, vehicle_id, NULL::text, trip_type,
		       daily_km_limit, per_km_charges, extra_per_km_charge, extra_per_hour_charge,
		       day_driver_allowance, night_charge, COALESCE(base_fare, 0), 0::numeric
		FROM common_rates
		WHERE pickup_city_id = $1
		  AND vehicle_id = $2
		  AND trip_type = $3
		  AND is_active`,
		string(pickupCityID), string(vehicleID), string(tripType),
	)
	return scanRate(row, SourceCommon)
}

// UpsertRouteRate and UpsertCommonRate back the admin rate screens.

func (s *Store) UpsertRouteRate(ctx context.Context, r *RateCard) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicle_rates (
			id, pickup_city_id, destination_city_id, vehicle_id, package_id, trip_type,
			daily_km_limit, per_km_charges, extra_per_km_charge, extra_per_hour_charge,
			day_driver_allowance, night_charge, base_fare, total_running_km, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,TRUE)
		ON CONFLICT (id) DO UPDATE SET
			daily_km_limit = EXCLUDED.daily_km_limit,
			per_km_charges = EXCLUDED.per_km_charges,
			extra_per_km_charge = EXCLUDED.extra_per_km_charge,
			extra_per_hour_charge = EXCLUDED.extra_per_hour_charge,
			day_driver_allowance = EXCLUDED.day_driver_allowance,
			night_charge = EXCLUDED.night_charge,
			base_fare = EXCLUDED.base_fare,
			total_running_km = EXCLUDED.total_running_km,
			updated_at = NOW()`,
		string(r.ID), string(r.PickupCityID), idPtr(r.DestinationCityID),
		string(r.VehicleID), idPtr(r.PackageID), string(r.TripType),
		r.DailyKmLimit, r.PerKmCharge, r.ExtraPerKmCharge, r.ExtraPerHourCharge,
		r.DayDriverAllowance, r.NightCharge, r.BaseFare, r.TotalRunningKm,
	)
	return err
}

func (s *Store) UpsertCommonRate(ctx context.Context, r *RateCard) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO common_rates (
			id, pickup_city_id, vehicle_id, trip_type,
			daily_km_limit, per_km_charges, extra_per_km_charge, extra_per_hour_charge,
			day_driver_allowance, night_charge, base_fare, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,TRUE)
		ON CONFLICT (id) DO UPDATE SET
			daily_km_limit = EXCLUDED.daily_km_limit,
			per_km_charges = EXCLUDED.per_km_charges,
			extra_per_km_charge = EXCLUDED.extra_per_km_charge,
			extra_per_hour_charge = EXCLUDED.extra_per_hour_charge,
			day_driver_allowance = EXCLUDED.day_driver_allowance,
			night_charge = EXCLUDED.night_charge,
			base_fare = EXCLUDED.base_fare,
			updated_at = NOW()`,
		string(r.ID), string(r.PickupCityID), string(r.VehicleID), string(r.TripType),
		r.DailyKmLimit, r.PerKmCharge, r.ExtraPerKmCharge, r.ExtraPerHourCharge,
		r.DayDriverAllowance, r.NightCharge, r.BaseFare,
	)
	return err
}

func (s *Store) DeactivateRouteRate(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `UPDATE vehicle_rates SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, string(id))
	return err
}

func (s *Store) DeactivateCommonRate(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `UPDATE common_rates SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, string(id))
	return err
}

func scanRate(row pgx.Row, src Source) (*RateCard, error) {
	var r RateCard
	var destCityID, packageID *string
	err := row.Scan(
		&r.ID, &r.PickupCityID, &destCityID, &r.VehicleID, &packageID, &r.TripType,
		&r.DailyKmLimit, &r.PerKmCharge, &r.ExtraPerKmCharge, &r.ExtraPerHourCharge,
		&r.DayDriverAllowance, &r.NightCharge, &r.BaseFare, &r.TotalRunningKm,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if destCityID != nil {
		v := types.ID(*destCityID)
		r.DestinationCityID = &v
	}
	if packageID != nil {
		v := types.ID(*packageID)
		r.PackageID = &v
	}
	r.Source = src
	return &r, nil
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
