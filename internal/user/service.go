package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"gymplace/internal/auth"
	"gymplace/internal/logger"
	"gymplace/internal/member"
	"gymplace/internal/metrics"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, access *auth.JWTClaims, refreshToken string) error
	Me(ctx context.Context, p auth.Principal) (*MeResponse, error)
}

type memberFinder interface {
	GetByUserID(ctx context.Context, userID int) (*member.Member, error)
}

type service struct {
	repo          Repository
	members       memberFinder
	accessSecret  string
	refreshSecret string
	revoked       auth.RevocationStore
	now           func() time.Time
}

// NewService builds the account service. revoked may be nil, in which case
// logout only asks the client to forget its tokens.
func NewService(repo Repository, members memberFinder, accessSecret, refreshSecret string, revoked auth.RevocationStore) Service {
	return &service{
		repo:          repo,
		members:       members,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		revoked:       revoked,
		now:           time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	tier := req.Tier
	if tier == "" {
		tier = member.TierBasic
	}
	if !tier.Valid() {
		return nil, member.ErrInvalidTier
	}

	username := strings.TrimSpace(req.Username)
	email := member.NormalizeEmail(req.Email)

	taken, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	u, m, err := s.repo.CreateWithMember(ctx,
		&User{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         auth.RoleMember,
			FirstName:    firstName,
			LastName:     lastName,
		},
		&member.Member{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Phone:     strings.TrimSpace(req.Phone),
			Tier:      tier,
		},
	)
	if err != nil {
		return nil, err
	}

	metrics.RecordSignup(member.ChannelAccount, string(m.Tier))
	logger.Info("account registered", "user_id", u.ID, "member_id", m.ID)

	return s.issue(u, m)
}

func (s *service) issue(u *User, m *member.Member) (*AuthResponse, error) {
	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Username, u.Role, s.accessSecret, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *u,
		Member:       m,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	m, err := s.memberOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return s.issue(u, m)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := auth.ValidateRefreshToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.Warn("refresh token revocation check failed", "error", err)
		} else if revoked {
			return nil, auth.ErrTokenRevoked
		}
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateAccessToken(u.ID, u.Username, u.Role, s.accessSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{AccessToken: accessToken, User: *u}, nil
}

// Logout denylists the access token and, when supplied, the caller's refresh token.
func (s *service) Logout(ctx context.Context, access *auth.JWTClaims, refreshToken string) error {
	if access == nil {
		return auth.ErrInvalidToken
	}
	if s.revoked == nil {
		logger.Warn("logout without revocation store, tokens stay valid until expiry", "user_id", access.UserID)
		return nil
	}

	now := s.now()
	if err := s.revoked.Revoke(ctx, access.ID, access.RemainingTTL(now)); err != nil {
		return err
	}

	if refreshToken != "" {
		refresh, err := auth.ValidateRefreshToken(refreshToken, s.refreshSecret)
		if err == nil && refresh.UserID == access.UserID {
			if err := s.revoked.Revoke(ctx, refresh.ID, refresh.RemainingTTL(now)); err != nil {
				return err
			}
		}
	}

	metrics.RecordLogout()
	logger.Info("user logged out", "user_id", access.UserID)
	return nil
}

func (s *service) Me(ctx context.Context, p auth.Principal) (*MeResponse, error) {
	u, err := s.repo.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	m, err := s.memberOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{User: *u, Member: m}, nil
}

// memberOf returns nil without error for accounts that have no member profile.
func (s *service) memberOf(ctx context.Context, userID int) (*member.Member, error) {
	m, err := s.members.GetByUserID(ctx, userID)
	if errors.Is(err, member.ErrMemberNotFound) {
		return nil, nil
	}
	return m, err
}
