package attendance

import (
	"context"
	"time"
)

type Repository interface {
	CheckIn(ctx context.Context, memberID int, at time.Time) (*Attendance, error)
	CheckOut(ctx context.Context, memberID int, at time.Time) (*Attendance, error)
	ListRecent(ctx context.Context, memberID int, limit int) ([]Attendance, error)
}
