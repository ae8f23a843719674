package attendance

import (
	"context"
	"errors"
	"time"

	"gymplace/internal/auth"
	"gymplace/internal/logger"
	"gymplace/internal/member"
	"gymplace/internal/metrics"
)

var ErrNoOpenCheckIn = errors.New("no open check-in")

const (
	DefaultRecent = 10
	maxRecent     = 100
)

type Service interface {
	CheckIn(ctx context.Context, p auth.Principal) (*Attendance, error)
	CheckOut(ctx context.Context, p auth.Principal) (*Attendance, error)
	Recent(ctx context.Context, memberID int, limit int) ([]Attendance, error)
	RecentMine(ctx context.Context, p auth.Principal, limit int) ([]Attendance, error)
}

type MemberResolver interface {
	ForPrincipal(ctx context.Context, p auth.Principal) (*member.Member, error)
}

type service struct {
	repo    Repository
	members MemberResolver
	now     func() time.Time
}

func NewService(repo Repository, members MemberResolver) Service {
	return &service{repo: repo, members: members, now: time.Now}
}

// CheckIn always appends a new record; repeated check-ins are not merged.
func (s *service) CheckIn(ctx context.Context, p auth.Principal) (*Attendance, error) {
	m, err := s.members.ForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.CheckIn(ctx, m.ID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn()
	logger.Info("member checked in", "member_id", m.ID, "attendance_id", a.ID)
	return a, nil
}

func (s *service) CheckOut(ctx context.Context, p auth.Principal) (*Attendance, error) {
	m, err := s.members.ForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.repo.CheckOut(ctx, m.ID, s.now().UTC())
}

func (s *service) Recent(ctx context.Context, memberID int, limit int) ([]Attendance, error) {
	if limit <= 0 {
		limit = DefaultRecent
	}
	if limit > maxRecent {
		limit = maxRecent
	}
	return s.repo.ListRecent(ctx, memberID, limit)
}

func (s *service) RecentMine(ctx context.Context, p auth.Principal, limit int) ([]Attendance, error) {
	m, err := s.members.ForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.Recent(ctx, m.ID, limit)
}
