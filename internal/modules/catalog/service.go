// README: Catalog service; thin validation over the store plus id assignment.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cabsafar/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// CatalogSource abstracts the store for consumers and tests.
type CatalogSource interface {
	ListCities(ctx context.Context) ([]City, error)
	GetCity(ctx context.Context, id types.ID) (*City, error)
	CreateCity(ctx context.Context, c *City) error
	DeleteCity(ctx context.Context, id types.ID) error
	ListVehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error)
	CreateVehicle(ctx context.Context, v *Vehicle) error
	SetVehicleActive(ctx context.Context, id types.ID, active bool) error
	ListPackages(ctx context.Context) ([]LocalPackage, error)
	CreatePackage(ctx context.Context, p *LocalPackage) error
}

type Service struct {
	store CatalogSource
}

func NewService(store CatalogSource) *Service {
	return &Service{store: store}
}

func (s *Service) Cities(ctx context.Context) ([]City, error) {
	return s.store.ListCities(ctx)
}

// City returns (nil, nil) for an unknown id; callers treat that as "this
// destination is a free place, not a catalog city".
func (s *Service) City(ctx context.Context, id types.ID) (*City, error) {
	return s.store.GetCity(ctx, id)
}

func (s *Service) AddCity(ctx context.Context, name string, stateCode *string) (*City, error) {
	if name == "" {
		return nil, ErrBadRequest
	}
	c := &City{ID: types.ID(uuid.NewString()), Name: name, StateCode: stateCode}
	if err := s.store.CreateCity(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RemoveCity(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.DeleteCity(ctx, id)
}

func (s *Service) Vehicles(ctx context.Context, activeOnly bool) ([]Vehicle, error) {
	return s.store.ListVehicles(ctx, activeOnly)
}

func (s *Service) AddVehicle(ctx context.Context, v Vehicle) (*Vehicle, error) {
	if v.Name == "" || v.VehicleType == "" {
		return nil, ErrBadRequest
	}
	v.ID = types.ID(uuid.NewString())
	v.IsActive = true
	if err := s.store.CreateVehicle(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) SetVehicleActive(ctx context.Context, id types.ID, active bool) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.SetVehicleActive(ctx, id, active)
}

func (s *Service) Packages(ctx context.Context) ([]LocalPackage, error) {
	return s.store.ListPackages(ctx)
}

func (s *Service) AddPackage(ctx context.Context, p LocalPackage) (*LocalPackage, error) {
	if p.Name == "" || p.Hours <= 0 || p.Kilometers <= 0 {
		return nil, ErrBadRequest
	}
	p.ID = types.ID(uuid.NewString())
	if err := s.store.CreatePackage(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
