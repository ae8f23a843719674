package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymplace/internal/db"
	"gymplace/internal/event"
	"gymplace/internal/specialhours"
)

var ErrInvalidMonth = errors.New("month must be 1-12 and year 1-9999")

const infoUpcoming = 10

type EventSource interface {
	Upcoming(ctx context.Context, today db.Date, limit int) ([]event.Event, error)
	Between(ctx context.Context, from, to db.Date) ([]event.Event, error)
}

type HoursSource interface {
	Upcoming(ctx context.Context, today db.Date, limit int) ([]specialhours.SpecialHours, error)
	Between(ctx context.Context, from, to db.Date) ([]specialhours.SpecialHours, error)
}

type Service interface {
	Month(ctx context.Context, year, month int, today db.Date) (*Month, error)
	Info(ctx context.Context, today db.Date) (*Info, error)
}

type service struct {
	events EventSource
	hours  HoursSource
}

func NewService(events EventSource, hours HoursSource) Service {
	return &service{events: events, hours: hours}
}

func (s *service) Month(ctx context.Context, year, month int, today db.Date) (*Month, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, ErrInvalidMonth
	}

	from, to := GridRange(year, time.Month(month))
	events, err := s.events.Between(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	specials, err := s.hours.Between(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load special hours: %w", err)
	}

	m := BuildMonth(year, time.Month(month), today, events, specials)
	return &m, nil
}

func (s *service) Info(ctx context.Context, today db.Date) (*Info, error) {
	m, err := s.Month(ctx, today.Year, int(today.Month), today)
	if err != nil {
		return nil, err
	}

	events, err := s.events.Upcoming(ctx, today, infoUpcoming)
	if err != nil {
		return nil, fmt.Errorf("load upcoming events: %w", err)
	}
	specials, err := s.hours.Upcoming(ctx, today, infoUpcoming)
	if err != nil {
		return nil, fmt.Errorf("load upcoming special hours: %w", err)
	}

	return &Info{
		Calendar:       *m,
		UpcomingEvents: events,
		SpecialHours:   specials,
		RegularHours:   regularHours,
	}, nil
}
