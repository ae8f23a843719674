package gymclass

import "context"

type Repository interface {
	Create(ctx context.Context, c *GymClass) (*GymClass, error)
	Update(ctx context.Context, id int, c *GymClass) (*GymClass, error)
	GetWithCount(ctx context.Context, id int) (*ClassWithCount, error)
	ListActiveWithCounts(ctx context.Context, limit int) ([]ClassWithCount, error)
	SetStatus(ctx context.Context, id int, status Status) error
	CountActive(ctx context.Context) (int, error)
}
