package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetByUserID(ctx context.Context, userID int) (*Member, error)
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
	ListActive(ctx context.Context, limit int) ([]Member, error)
	CountActive(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, id int, req ProfileUpdateRequest) (*Member, error)
	SetStatus(ctx context.Context, id int, status Status) error
}
