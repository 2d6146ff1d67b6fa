package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/job-portal/internal"
	userDatamodel "github.com/frahmantamala/job-portal/internal/core/datamodel/user"
	"github.com/frahmantamala/job-portal/internal/core/events"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetActorByID(userID int64) (*Actor, error)
	ForgetPassword(actor *Actor, dto ForgetPasswordDTO) error
	ResetPassword(encodedUID, token string, dto ResetPasswordDTO) error
	HashPassword(password string) (string, error)
}

type RepositoryAPI interface {
	GetPasswordForEmail(email string) (passwordHash string, userID int64, err error)
	GetActorByID(userID int64) (*Actor, error)
	GetUserByID(userID int64) (*userDatamodel.User, error)
	GetUserByEmailAndID(email string, userID int64) (*userDatamodel.User, error)
	UpdatePassword(userID int64, passwordHash string) error
	UpdateLastLogin(userID int64, at time.Time) error
}

// Service handles sessions, password hashing and the reset-token flow.
type Service struct {
	repo         RepositoryAPI
	tokenGen     TokenGeneratorAPI
	resetTokens  *ResetTokenGenerator
	bus          *events.EventBus
	resetBaseURL string
	bcryptCost   int
	logger       *slog.Logger
}

func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, resetTokens *ResetTokenGenerator, bus *events.EventBus, resetBaseURL string, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:         repo,
		tokenGen:     tokenGen,
		resetTokens:  resetTokens,
		bus:          bus,
		resetBaseURL: resetBaseURL,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates credentials and returns a token pair. A successful
// login updates last_login, which also retires any outstanding reset token
// bound to the previous state.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, userID, err := s.repo.GetPasswordForEmail(dto.Email)
	if err != nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	actor, err := s.repo.GetActorByID(userID)
	if err != nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(userID, time.Now()); err != nil {
		s.logger.Warn("failed to record last login", "user_id", userID, "error", err)
	}

	return s.issueTokens(actor)
}

// RefreshTokens validates a refresh token and rotates the pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGen.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return AuthTokens{}, internal.ErrInvalidToken
	}

	actor, err := s.repo.GetActorByID(userID)
	if err != nil {
		return AuthTokens{}, internal.ErrInvalidToken
	}

	return s.issueTokens(actor)
}

func (s *Service) issueTokens(actor *Actor) (AuthTokens, error) {
	id := strconv.FormatInt(actor.ID, 10)

	accessToken, err := s.tokenGen.GenerateAccessToken(id, actor.Email, string(actor.Role))
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGen.GenerateRefreshToken(id, actor.Email, string(actor.Role))
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

func (s *Service) GetActorByID(userID int64) (*Actor, error) {
	return s.repo.GetActorByID(userID)
}

// ForgetPassword issues a reset link for the given email. The lookup is
// scoped to the requesting actor's own id, matching the existing product
// behavior: even a recruiter can only request a link for the account they
// are logged in as.
func (s *Service) ForgetPassword(actor *Actor, dto ForgetPasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if actor == nil {
		return internal.ErrForbidden
	}

	user, err := s.repo.GetUserByEmailAndID(dto.Email, actor.ID)
	if err != nil {
		return internal.ErrUserNotFound
	}

	uid := EncodeUID(user.ID)
	token := s.resetTokens.MakeToken(user)
	resetURL := fmt.Sprintf("%s?uid=%s&token=%s", s.resetBaseURL, url.QueryEscape(uid), url.QueryEscape(token))

	s.logger.Info("password reset link issued", "user_id", user.ID)

	if s.bus != nil {
		if err := s.bus.Publish(context.Background(), events.NewPasswordResetRequestedEvent(user.Email, resetURL)); err != nil {
			s.logger.Error("failed to publish reset event", "user_id", user.ID, "error", err)
		}
	}

	return nil
}

// VerifyResetToken resolves the encoded identity and checks the token
// against the user's current state. It never mutates anything; the two
// failure modes stay distinct here and are collapsed at the HTTP layer.
func (s *Service) VerifyResetToken(encodedUID, token string) (*userDatamodel.User, error) {
	userID, err := DecodeUID(encodedUID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if !s.resetTokens.CheckToken(user, token) {
		return nil, internal.ErrInvalidResetToken
	}

	return user, nil
}

// ResetPassword verifies the link and persists a new password hash. The
// consumed token is invalid afterwards because it was derived from the
// pre-reset hash.
func (s *Service) ResetPassword(encodedUID, token string, dto ResetPasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	user, err := s.VerifyResetToken(encodedUID, token)
	if err != nil {
		return err
	}

	hash, err := s.HashPassword(dto.NewPassword)
	if err != nil {
		return internal.NewInternalError("failed to hash password", err)
	}

	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		return internal.NewInternalError("failed to update password", err)
	}

	s.logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(userID, email, role string) (string, error) {
	return j.signedToken(userID, email, role, j.AccessTokenTTL, j.AccessTokenSecret)
}

// GenerateRefreshToken creates a new refresh token
func (j *JWTTokenGenerator) GenerateRefreshToken(userID, email, role string) (string, error) {
	return j.signedToken(userID, email, role, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) signedToken(userID, email, role string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		// Refresh tokens outlive the access TTL; pick the secret accordingly.
		if claims, ok := token.Claims.(*Claims); ok {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, internal.ErrInvalidToken
}
