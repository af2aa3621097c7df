// README: Lead service; capture and back-office workflow.
package leads

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cabsafar/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("lead not found")
)

type LeadSource interface {
	Create(ctx context.Context, l *Lead) error
	List(ctx context.Context, limit int) ([]Lead, error)
	UpdateStatus(ctx context.Context, id types.ID, status LeadStatus, notes *string) (bool, error)
}

type Service struct {
	store LeadSource
}

func NewService(store LeadSource) *Service {
	return &Service{store: store}
}

// Capture records a lead from the search popup. Only the mobile number is
// mandatory; everything else is whatever the visitor had filled in so far.
func (s *Service) Capture(ctx context.Context, l Lead) (*Lead, error) {
	if l.MobileNumber == "" {
		return nil, ErrBadRequest
	}
	l.ID = types.ID(uuid.NewString())
	if l.Status == "" {
		l.Status = LeadNew
	}
	if err := s.store.Create(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Lead, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.List(ctx, limit)
}

func (s *Service) UpdateStatus(ctx context.Context, id types.ID, status LeadStatus, notes *string) error {
	if id == "" || status == "" {
		return ErrBadRequest
	}
	ok, err := s.store.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
