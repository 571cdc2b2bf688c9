package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/auth"
	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/db/models"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/security"
)

// maxFailedAttempts locks the account until a manual reactivation.
const maxFailedAttempts = 5

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type sessionRegistry interface {
	Register(ctx context.Context, accessID, userID string) error
	Revoke(ctx context.Context, accessID string) error
}

// LoginResult carries the signed token and the authenticated user.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"-"`
}

// Service authenticates users and manages their sessions.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	users    userRepository
	sessions sessionRegistry
	jwt      config.JWTConfig
	now      func() time.Time
}

func NewService(users userRepository, sessions sessionRegistry, jwt config.JWTConfig) (Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session registry required")
	}
	return &service{users: users, sessions: sessions, jwt: jwt, now: time.Now}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account is deactivated")
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		s.recordFailure(ctx, user)
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	token, err := auth.MintAccessToken(s.jwt, now, auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}
	claims, err := auth.ParseAccessToken(s.jwt, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading minted token")
	}
	if err := s.sessions.Register(ctx, claims.ID, user.ID.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registering session")
	}

	user.FailedLoginAttempts = 0
	user.LastFailedLoginAt = nil
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording login")
	}

	return &LoginResult{AccessToken: token, User: user}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

// recordFailure bumps the failure counter and locks the account at the cap.
// Persistence errors here are swallowed so the caller still sees the
// credential failure.
func (s *service) recordFailure(ctx context.Context, user *models.User) {
	now := s.now()
	user.FailedLoginAttempts++
	user.LastFailedLoginAt = &now
	if user.FailedLoginAttempts >= maxFailedAttempts {
		user.IsActive = false
	}
	_ = s.users.Update(ctx, user)
}
