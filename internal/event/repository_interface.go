package event

import (
	"context"

	"gymplace/internal/db"
)

type Repository interface {
	Create(ctx context.Context, e *Event) (*Event, error)
	Update(ctx context.Context, id int, e *Event) (*Event, error)
	GetByID(ctx context.Context, id int) (*Event, error)
	SetStatus(ctx context.Context, id int, status Status) error
	ListUpcoming(ctx context.Context, from db.Date, limit int) ([]Event, error)
	ListBetween(ctx context.Context, from, to db.Date) ([]Event, error)
}
