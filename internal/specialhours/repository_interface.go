package specialhours

import (
	"context"

	"gymplace/internal/db"
)

type Repository interface {
	Create(ctx context.Context, s *SpecialHours) (*SpecialHours, error)
	Update(ctx context.Context, id int, s *SpecialHours) (*SpecialHours, error)
	Delete(ctx context.Context, id int) error
	ListUpcoming(ctx context.Context, from db.Date, limit int) ([]SpecialHours, error)
	ListBetween(ctx context.Context, from, to db.Date) ([]SpecialHours, error)
}
