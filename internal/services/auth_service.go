package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediahub/internal/common"
	"mediahub/internal/models"
	"mediahub/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "mediahub"

// AuthService handles registration, login and bearer token management
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	GenerateToken(userID int64) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// TokenClaims represents JWT claims
type TokenClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

type authService struct {
	users      repositories.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	saltRounds int
	now        func() time.Time
}

// NewAuthService creates a new authentication service. The same secret must be
// shared with the auth middleware.
func NewAuthService(users repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, saltRounds int) AuthService {
	return &authService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		saltRounds: saltRounds,
		now:        time.Now,
	}
}

// Register creates a user and returns a token for it
func (s *authService) Register(ctx context.Context, email, password string) (*models.AuthResult, error) {
	if email == "" || password == "" {
		return nil, common.NewValidationError("Email and password are required")
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, common.NewInternalError(err)
	}
	if exists {
		return nil, common.NewConflictError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRounds)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, common.NewValidationError("Password must be at most 72 bytes")
		}
		return nil, common.NewInternalError(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, common.NewConflictError("User already exists")
		}
		return nil, common.NewInternalError(err)
	}

	return s.authResult(user)
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	if email == "" || password == "" {
		return nil, common.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewAuthError("Invalid credentials")
		}
		return nil, common.NewInternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.NewAuthError("Invalid credentials")
	}

	return s.authResult(user)
}

// GenerateToken signs an HS256 token for userID
func (s *authService) GenerateToken(userID int64) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return token, nil
}

// ValidateToken validates JWT access token
func (s *authService) ValidateToken(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, common.NewAuthError("No token provided")
	}

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.UserID <= 0 {
		return nil, &common.AppError{Kind: common.KindAuth, Message: "Invalid token", Err: err}
	}

	return claims, nil
}

func (s *authService) authResult(user *models.User) (*models.AuthResult, error) {
	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, common.NewInternalError(err)
	}
	return &models.AuthResult{Token: token, User: user.Public()}, nil
}
