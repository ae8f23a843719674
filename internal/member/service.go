package member

import (
	"context"
	"errors"
	"strings"

	"gymplace/internal/auth"
	"gymplace/internal/logger"
	"gymplace/internal/metrics"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidTier    = errors.New("invalid membership tier")
	// ErrNoMemberProfile means the authenticated account has no linked member.
	ErrNoMemberProfile = errors.New("no member profile for this account")
)

const (
	ChannelSelfService = "self_service"
	ChannelAdmin       = "admin"
	ChannelAccount     = "account"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*Member, error)
	Create(ctx context.Context, req SignupRequest) (*Member, error)
	Get(ctx context.Context, id int) (*Member, error)
	ForPrincipal(ctx context.Context, p auth.Principal) (*Member, error)
	ListActive(ctx context.Context) ([]Member, error)
	Recent(ctx context.Context, n int) ([]Member, error)
	CountActive(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, p auth.Principal, req ProfileUpdateRequest) (*Member, error)
	Deactivate(ctx context.Context, id int) error
	Reactivate(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*Member, error) {
	return s.create(ctx, req, ChannelSelfService)
}

func (s *service) Create(ctx context.Context, req SignupRequest) (*Member, error) {
	return s.create(ctx, req, ChannelAdmin)
}

func (s *service) create(ctx context.Context, req SignupRequest, channel string) (*Member, error) {
	m, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	metrics.RecordSignup(channel, string(created.Tier))
	logger.Info("member created", "member_id", created.ID, "channel", channel)
	return created, nil
}

// prepare normalizes the request and rejects duplicates before anything is written.
func (s *service) prepare(ctx context.Context, req SignupRequest) (*Member, error) {
	tier := req.Tier
	if tier == "" {
		tier = TierBasic
	}
	if !tier.Valid() {
		return nil, ErrInvalidTier
	}

	email := NormalizeEmail(req.Email)
	exists, err := s.repo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	return &Member{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Tier:      tier,
	}, nil
}

func (s *service) Get(ctx context.Context, id int) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ForPrincipal(ctx context.Context, p auth.Principal) (*Member, error) {
	m, err := s.repo.GetByUserID(ctx, p.UserID)
	if errors.Is(err, ErrMemberNotFound) {
		return nil, ErrNoMemberProfile
	}
	return m, err
}

func (s *service) ListActive(ctx context.Context) ([]Member, error) {
	return s.repo.ListActive(ctx, 0)
}

func (s *service) Recent(ctx context.Context, n int) ([]Member, error) {
	if n <= 0 {
		return []Member{}, nil
	}
	return s.repo.ListActive(ctx, n)
}

func (s *service) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, p auth.Principal, req ProfileUpdateRequest) (*Member, error) {
	current, err := s.ForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}
	if !req.Tier.Valid() {
		return nil, ErrInvalidTier
	}

	req.Email = NormalizeEmail(req.Email)
	if req.Email != current.Email {
		exists, err := s.repo.EmailExists(ctx, req.Email, current.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)

	return s.repo.UpdateProfile(ctx, current.ID, req)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusInactive)
}

func (s *service) Reactivate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusActive)
}
