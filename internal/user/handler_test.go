package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymplace/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AuthResponse), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AuthResponse), args.Error(1)
}

func (m *MockService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AuthResponse), args.Error(1)
}

func (m *MockService) Logout(ctx context.Context, access *auth.JWTClaims, refreshToken string) error {
	return m.Called(ctx, access, refreshToken).Error(0)
}

func (m *MockService) Me(ctx context.Context, p auth.Principal) (*MeResponse, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MeResponse), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)

	protected := r.Group("")
	protected.Use(auth.AuthMiddleware(testAccessSecret, nil))
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/me", h.Me)
	return r
}

func postJSON(r http.Handler, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	req := RegisterRequest{
		Username: "alice", Password: "password123", PasswordConfirm: "password123",
		FirstName: "Alice", LastName: "Smith", Email: "a@example.com", Phone: "555",
	}

	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, req).Return(&AuthResponse{AccessToken: "a", RefreshToken: "r", User: User{ID: 1}}, nil)

		w := postJSON(setupRouter(svc), "/auth/register", "", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "a", resp.AccessToken)
	})

	t.Run("password mismatch", func(t *testing.T) {
		bad := req
		bad.PasswordConfirm = "different1"
		svc := new(MockService)

		w := postJSON(setupRouter(svc), "/auth/register", "", bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("username taken", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, req).Return(nil, ErrUsernameTaken)

		w := postJSON(setupRouter(svc), "/auth/register", "", req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "username")
	})
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := new(MockService)
	svc.On("Login", mock.Anything, LoginRequest{Username: "alice", Password: "bad"}).Return(nil, ErrInvalidCredentials)

	w := postJSON(setupRouter(svc), "/auth/login", "", LoginRequest{Username: "alice", Password: "bad"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshHandler_Revoked(t *testing.T) {
	svc := new(MockService)
	svc.On("Refresh", mock.Anything, "old").Return(nil, auth.ErrTokenRevoked)

	w := postJSON(setupRouter(svc), "/auth/refresh", "", RefreshRequest{RefreshToken: "old"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token revoked")
}

func TestLogoutHandler(t *testing.T) {
	token, err := auth.GenerateAccessToken(1, "alice", auth.RoleMember, testAccessSecret)
	require.NoError(t, err)

	svc := new(MockService)
	svc.On("Logout", mock.Anything, mock.AnythingOfType("*auth.JWTClaims"), "refresh-token").Return(nil)

	w := postJSON(setupRouter(svc), "/auth/logout", token, LogoutRequest{RefreshToken: "refresh-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)

	w = postJSON(setupRouter(svc), "/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
