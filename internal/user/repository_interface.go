package user

import (
	"context"

	"gymplace/internal/member"
)

type Repository interface {
	CreateWithMember(ctx context.Context, u *User, m *member.Member) (*User, *member.Member, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
