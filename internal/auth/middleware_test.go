package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRevocations struct {
	revoked map[string]time.Duration
	err     error
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: map[string]time.Duration{}}
}

func (f *fakeRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	f.revoked[tokenID] = ttl
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}

func protectedRouter(store RevocationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(testSecret, store))
	router.GET("/me", func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "username": p.Username, "role": p.Role})
	})
	router.POST("/logout", func(c *gin.Context) {
		claims, _ := GetClaims(c)
		if err := store.Revoke(c.Request.Context(), claims.ID, claims.RemainingTTL(time.Now())); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	return router
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"Empty header", ""},
		{"Invalid format", "Token abc"},
		{"Empty token", "Bearer "},
		{"Garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			c.Request = req

			AuthMiddleware(testSecret, nil)(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAuthMiddleware_SetsPrincipal(t *testing.T) {
	token, err := GenerateAccessToken(5, "jane", RoleMember, testSecret)
	require.NoError(t, err)

	w := doRequest(protectedRouter(nil), "GET", "/me", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":5,"username":"jane","role":"member"}`, w.Body.String())
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken(5, "jane", RoleMember, testSecret)
	require.NoError(t, err)

	w := doRequest(protectedRouter(nil), "GET", "/me", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access token required")
}

func TestAuthMiddleware_LogoutRevokesToken(t *testing.T) {
	store := newFakeRevocations()
	router := protectedRouter(store)
	token, err := GenerateAccessToken(5, "jane", RoleMember, testSecret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/me", token).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(router, "POST", "/logout", token).Code)
	require.Len(t, store.revoked, 1)
	for _, ttl := range store.revoked {
		assert.LessOrEqual(t, ttl, AccessTokenTTL)
		assert.Greater(t, ttl, time.Duration(0))
	}

	w := doRequest(router, "GET", "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token revoked")
}

func TestAuthMiddleware_RevocationStoreDown(t *testing.T) {
	store := newFakeRevocations()
	store.err = errors.New("connection refused")
	token, err := GenerateAccessToken(5, "jane", RoleMember, testSecret)
	require.NoError(t, err)

	w := doRequest(protectedRouter(store), "GET", "/me", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		userRole       any
		requiredRole   string
		expectedStatus int
	}{
		{"No role", nil, RoleAdmin, http.StatusUnauthorized},
		{"Wrong type", 123, RoleAdmin, http.StatusUnauthorized},
		{"Insufficient role", RoleMember, RoleAdmin, http.StatusForbidden},
		{"Correct role", RoleAdmin, RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.userRole != nil {
				c.Set(ctxRole, tt.userRole)
			}

			RequireRole(tt.requiredRole)(c)
			if !c.IsAborted() {
				c.Status(http.StatusOK)
			}

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetPrincipal_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetPrincipal(c)
	assert.False(t, ok)
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OptionalAuth(testSecret, nil))
	router.GET("/classes/1", func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"signed_in": ok, "user_id": p.UserID})
	})

	token, err := GenerateAccessToken(5, "alice", RoleMember, testSecret)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/classes/1", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signed_in": true, "user_id": 5}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/classes/1", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signed_in": false, "user_id": 0}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/classes/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"signed_in": false, "user_id": 0}`, w.Body.String())
}
