package registration

import "context"

type Repository interface {
	Register(ctx context.Context, memberID, classID int) (*Registration, Outcome, error)
	Cancel(ctx context.Context, memberID, classID int) (*Registration, error)
	CancelByID(ctx context.Context, id int) (*Registration, error)
	SetAttended(ctx context.Context, id int, attended bool) (*Registration, error)
	IsRegistered(ctx context.Context, memberID, classID int) (bool, error)
	ListForMember(ctx context.Context, memberID int, onlyActive bool, limit int) ([]Registration, error)
	ListForClass(ctx context.Context, classID int, onlyActive bool) ([]Registration, error)
}
