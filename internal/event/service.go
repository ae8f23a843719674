package event

import (
	"context"
	"errors"
	"strings"

	"gymplace/internal/db"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidType      = errors.New("invalid event type")
)

const DefaultUpcoming = 10

type Service interface {
	Create(ctx context.Context, req EventRequest) (*Event, error)
	Update(ctx context.Context, id int, req EventRequest) (*Event, error)
	Get(ctx context.Context, id int) (*Event, error)
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	Upcoming(ctx context.Context, today db.Date, limit int) ([]Event, error)
	Between(ctx context.Context, from, to db.Date) ([]Event, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func fromRequest(req EventRequest) (*Event, error) {
	eventType := req.EventType
	if eventType == "" {
		eventType = TypeEvent
	}
	if !eventType.Valid() {
		return nil, ErrInvalidType
	}
	if !req.StartTime.Before(*req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	return &Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		EventType:   eventType,
		Date:        *req.Date,
		StartTime:   *req.StartTime,
		EndTime:     *req.EndTime,
	}, nil
}

func (s *service) Create(ctx context.Context, req EventRequest) (*Event, error) {
	e, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

func (s *service) Update(ctx context.Context, id int, req EventRequest) (*Event, error) {
	e, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, e)
}

func (s *service) Get(ctx context.Context, id int) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Activate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusActive)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusInactive)
}

func (s *service) Upcoming(ctx context.Context, today db.Date, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultUpcoming
	}
	return s.repo.ListUpcoming(ctx, today, limit)
}

func (s *service) Between(ctx context.Context, from, to db.Date) ([]Event, error) {
	if to.Before(from) {
		return []Event{}, nil
	}
	return s.repo.ListBetween(ctx, from, to)
}
