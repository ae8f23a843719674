package user

import (
	"time"

	"gymplace/internal/member"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest creates a login account together with its member profile.
type RegisterRequest struct {
	Username        string      `json:"username" binding:"required,min=3,max=150,alphanum"`
	Password        string      `json:"password" binding:"required,min=8,max=72"`
	PasswordConfirm string      `json:"password_confirm" binding:"required,eqfield=Password"`
	FirstName       string      `json:"first_name" binding:"required,max=100"`
	LastName        string      `json:"last_name" binding:"required,max=100"`
	Email           string      `json:"email" binding:"required,email,max=254"`
	Phone           string      `json:"phone" binding:"required,max=20"`
	Tier            member.Tier `json:"membership_tier" binding:"omitempty,oneof=basic premium platinum"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	User         User           `json:"user"`
	Member       *member.Member `json:"member,omitempty"`
}

// MeResponse carries the account and its member profile, which staff accounts may lack.
type MeResponse struct {
	User   User           `json:"user"`
	Member *member.Member `json:"member"`
}
