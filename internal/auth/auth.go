package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of account roles. Staff is a separate flag on the
// actor, not a role.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter:
		return true
	}
	return false
}

// Actor is the authenticated identity attached to a request. Every policy
// and workflow function takes it as an explicit argument.
type Actor struct {
	ID      int64  `json:"id"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	IsStaff bool   `json:"is_staff"`
}

type ctxKey string

const ContextUserKey ctxKey = "user"

func ActorFromContext(ctx context.Context) (*Actor, bool) {
	a, ok := ctx.Value(ContextUserKey).(*Actor)
	return a, ok
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenGeneratorAPI creates and validates session tokens.
type TokenGeneratorAPI interface {
	GenerateAccessToken(userID string, email string, role string) (token string, err error)
	GenerateRefreshToken(userID string, email string, role string) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}
