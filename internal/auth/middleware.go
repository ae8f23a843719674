package auth

import (
	"errors"
	"net/http"
	"strings"

	"gymplace/internal/api"
	"gymplace/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
	ctxRole     = "user_role"
	ctxClaims   = "token_claims"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: msg})
}

// AuthMiddleware validates the bearer access token. revoked may be nil.
func AuthMiddleware(accessTokenSecret string, revoked RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abortUnauthorized(c, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				abortUnauthorized(c, "Token expired")
			default:
				abortUnauthorized(c, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != TokenTypeAccess {
			abortUnauthorized(c, "Access token required")
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("token revocation check failed", "error", err)
			} else if isRevoked {
				abortUnauthorized(c, "Token revoked")
				return
			}
		}

		SetPrincipal(c, Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role})
		c.Set(ctxClaims, claims)

		c.Next()
	}
}

// OptionalAuth sets the principal when a valid access token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(accessTokenSecret string, revoked RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.Next()
			return
		}

		claims, err := ValidateToken(strings.TrimSpace(parts[1]), accessTokenSecret)
		if err != nil || claims.TokenType != TokenTypeAccess {
			c.Next()
			return
		}
		if revoked != nil {
			if isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID); err == nil && isRevoked {
				c.Next()
				return
			}
		}

		SetPrincipal(c, Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role})
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			abortUnauthorized(c, "User role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			abortUnauthorized(c, "Invalid role type")
			return
		}

		if roleStr != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	return id, ok
}

// SetPrincipal stores the caller on the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(ctxUserID, p.UserID)
	c.Set(ctxUsername, p.Username)
	c.Set(ctxRole, p.Role)
}

// GetPrincipal returns the caller set by AuthMiddleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return Principal{}, false
	}
	return Principal{
		UserID:   id,
		Username: c.GetString(ctxUsername),
		Role:     c.GetString(ctxRole),
	}, true
}

func GetClaims(c *gin.Context) (*JWTClaims, bool) {
	v, exists := c.Get(ctxClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*JWTClaims)
	return claims, ok
}
