// README: Catalog store backed by PostgreSQL.
package catalog

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

func (s *Store) ListCities(ctx context.Context) ([]City, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, state_code, created_at
		FROM cities
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.StateCode, &c.CreatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (s *Store) GetCity(ctx context.Context, id types.ID) (*City, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, state_code, created_at FROM cities WHERE id = $1`, string(id))
	var c City
	err := row.Scan(&c.ID, &c.Name, &c.StateCode, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCity(ctx context.Context, c *City) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO cities (id, name, state_code) VALUES ($1, $2, $3)`,
		string(c.ID), c.Name, c.StateCode)
	return err
}

func (s *Store) DeleteCity(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, string(id))
	return err
}

func (s *Store) ListVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error) {
	q := `
		SELECT id, name, model, vehicle_type, COALESCE(seating_capacity, 0), image_url, is_active, created_at
		FROM vehicles`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Model, &v.VehicleType, &v.SeatingCapacity, &v.ImageURL, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (s *Store) CreateVehicle(ctx context.Context, v *Vehicle) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicles (id, name, model, vehicle_type, seating_capacity, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(v.ID), v.Name, v.Model, v.VehicleType, v.SeatingCapacity, v.ImageURL, v.IsActive)
	return err
}

func (s *Store) SetVehicleActive(ctx context.Context, id types.ID, active bool) error {
	_, err := s.db.Exec(ctx, `
		UPDATE vehicles SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		string(id), active)
	return err
}

func (s *Store) ListPackages(ctx context.Context) ([]LocalPackage, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, hours, kilometers FROM local_packages ORDER BY hours`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pkgs []LocalPackage
	for rows.Next() {
		var p LocalPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Hours, &p.Kilometers); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}

func (s *Store) CreatePackage(ctx context.Context, p *LocalPackage) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO local_packages (id, name, hours, kilometers) VALUES ($1, $2, $3, $4)`,
		string(p.ID), p.Name, p.Hours, p.Kilometers)
	return err
}
