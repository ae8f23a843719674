package specialhours

import (
	"context"
	"errors"
	"strings"

	"gymplace/internal/db"
)

var (
	ErrSpecialHoursNotFound = errors.New("special hours not found")
	ErrInvalidHours         = errors.New("open and close times are required and open must be before close")
	ErrInvalidClosureType   = errors.New("invalid closure type")
)

const DefaultUpcoming = 10

type Service interface {
	Create(ctx context.Context, req SpecialHoursRequest) (*SpecialHours, error)
	Update(ctx context.Context, id int, req SpecialHoursRequest) (*SpecialHours, error)
	Delete(ctx context.Context, id int) error
	Upcoming(ctx context.Context, today db.Date, limit int) ([]SpecialHours, error)
	Between(ctx context.Context, from, to db.Date) ([]SpecialHours, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// fromRequest treats a missing is_closed as a full-day closure.
func fromRequest(req SpecialHoursRequest) (*SpecialHours, error) {
	if !req.ClosureType.Valid() {
		return nil, ErrInvalidClosureType
	}

	closed := true
	if req.IsClosed != nil {
		closed = *req.IsClosed
	}

	s := &SpecialHours{
		Date:        *req.Date,
		ClosureType: req.ClosureType,
		Title:       strings.TrimSpace(req.Title),
		IsClosed:    closed,
	}
	if closed {
		return s, nil
	}

	if req.OpenTime == nil || req.CloseTime == nil || !req.OpenTime.Before(*req.CloseTime) {
		return nil, ErrInvalidHours
	}
	s.OpenTime = req.OpenTime
	s.CloseTime = req.CloseTime
	return s, nil
}

func (s *service) Create(ctx context.Context, req SpecialHoursRequest) (*SpecialHours, error) {
	hours, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, hours)
}

func (s *service) Update(ctx context.Context, id int, req SpecialHoursRequest) (*SpecialHours, error) {
	hours, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, hours)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Upcoming(ctx context.Context, today db.Date, limit int) ([]SpecialHours, error) {
	if limit <= 0 {
		limit = DefaultUpcoming
	}
	return s.repo.ListUpcoming(ctx, today, limit)
}

func (s *service) Between(ctx context.Context, from, to db.Date) ([]SpecialHours, error) {
	if to.Before(from) {
		return []SpecialHours{}, nil
	}
	return s.repo.ListBetween(ctx, from, to)
}
