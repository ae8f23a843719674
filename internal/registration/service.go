package registration

import (
	"context"
	"errors"

	"gymplace/internal/auth"
	"gymplace/internal/logger"
	"gymplace/internal/member"
	"gymplace/internal/metrics"
)

var (
	ErrClassNotFound         = errors.New("class not found")
	ErrClassFull             = errors.New("class is full")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrDuplicateRegistration = errors.New("registration already exists")
)

type Service interface {
	Register(ctx context.Context, p auth.Principal, classID int) (*Registration, Outcome, error)
	Cancel(ctx context.Context, p auth.Principal, classID int) (*Registration, error)
	AdminCancel(ctx context.Context, registrationID int) (*Registration, error)
	MarkAttended(ctx context.Context, registrationID int, attended bool) (*Registration, error)
	ListMine(ctx context.Context, p auth.Principal, onlyActive bool) ([]Registration, error)
	ListForMember(ctx context.Context, memberID int, onlyActive bool, limit int) ([]Registration, error)
	ListForClass(ctx context.Context, classID int, onlyActive bool) ([]Registration, error)
	IsRegistered(ctx context.Context, memberID, classID int) (bool, error)
}

// MemberResolver maps the authenticated caller to their member profile.
type MemberResolver interface {
	ForPrincipal(ctx context.Context, p auth.Principal) (*member.Member, error)
}

type service struct {
	repo    Repository
	members MemberResolver
}

func NewService(repo Repository, members MemberResolver) Service {
	return &service{repo: repo, members: members}
}

func (s *service) Register(ctx context.Context, p auth.Principal, classID int) (*Registration, Outcome, error) {
	m, err := s.members.ForPrincipal(ctx, p)
	if err != nil {
		return nil, "", err
	}

	reg, outcome, err := s.repo.Register(ctx, m.ID, classID)
	if err != nil {
		if errors.Is(err, ErrClassFull) {
			metrics.RecordRegistration("full")
		}
		return nil, "", err
	}

	metrics.RecordRegistration(string(outcome))
	if outcome != OutcomeAlreadyRegistered {
		logger.Info("class registration", "member_id", m.ID, "class_id", classID, "registration_id", reg.ID, "outcome", outcome)
	}
	return reg, outcome, nil
}

func (s *service) Cancel(ctx context.Context, p auth.Principal, classID int) (*Registration, error) {
	m, err := s.members.ForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}

	reg, err := s.repo.Cancel(ctx, m.ID, classID)
	if err != nil {
		return nil, err
	}

	metrics.RecordRegistrationCancellation()
	logger.Info("class registration cancelled", "member_id", m.ID, "class_id", classID, "registration_id", reg.ID)
	return reg, nil
}

func (s *service) AdminCancel(ctx context.Context, registrationID int) (*Registration, error) {
	reg, err := s.repo.CancelByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	metrics.RecordRegistrationCancellation()
	return reg, nil
}

func (s *service) MarkAttended(ctx context.Context, registrationID int, attended bool) (*Registration, error) {
	return s.repo.SetAttended(ctx, registrationID, attended)
}

func (s *service) ListMine(ctx context.Context, p auth.Principal, onlyActive bool) ([]Registration, error) {
	m, err := s.members.ForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForMember(ctx, m.ID, onlyActive, 0)
}

func (s *service) ListForMember(ctx context.Context, memberID int, onlyActive bool, limit int) ([]Registration, error) {
	return s.repo.ListForMember(ctx, memberID, onlyActive, limit)
}

func (s *service) ListForClass(ctx context.Context, classID int, onlyActive bool) ([]Registration, error) {
	return s.repo.ListForClass(ctx, classID, onlyActive)
}

func (s *service) IsRegistered(ctx context.Context, memberID, classID int) (bool, error) {
	return s.repo.IsRegistered(ctx, memberID, classID)
}
