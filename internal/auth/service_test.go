package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/security"
)

type stubUsers struct {
	byEmail map[string]*models.User
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) Update(_ context.Context, user *models.User) error {
	s.byEmail[strings.ToLower(user.Email)] = user
	return nil
}

type stubSessions struct {
	registered map[string]string
	revoked    []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{registered: map[string]string{}}
}

func (s *stubSessions) Register(_ context.Context, accessID, userID string) error {
	s.registered[accessID] = userID
	return nil
}

func (s *stubSessions) Revoke(_ context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func testJWT() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "immogest-test",
		ExpirationMinutes: 15,
		SessionTTLMinutes: 60,
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func activeUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashFor(t, password),
		Role:         enums.UserRoleManager,
		IsActive:     true,
	}
}

func TestLoginRegistersSessionAndStampsLogin(t *testing.T) {
	user := activeUser(t, "gerant@immogest.cm", "s3cret-pass")
	users := &stubUsers{byEmail: map[string]*models.User{user.Email: user}}
	sessions := newStubSessions()
	svc, err := NewService(users, sessions, testJWT())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.Login(context.Background(), "Gerant@Immogest.cm", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("expected signed token")
	}
	if len(sessions.registered) != 1 {
		t.Fatalf("expected one registered session, got %d", len(sessions.registered))
	}
	if user.LastLoginAt == nil {
		t.Fatal("expected last login stamped")
	}
	if user.FailedLoginAttempts != 0 {
		t.Fatalf("expected failure counter reset, got %d", user.FailedLoginAttempts)
	}
}

func TestLoginWrongPasswordCountsFailure(t *testing.T) {
	user := activeUser(t, "gerant@immogest.cm", "s3cret-pass")
	users := &stubUsers{byEmail: map[string]*models.User{user.Email: user}}
	svc, err := NewService(users, newStubSessions(), testJWT())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Login(context.Background(), user.Email, "wrong")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", gotErr)
	}
	if user.FailedLoginAttempts != 1 {
		t.Fatalf("expected failure recorded, got %d", user.FailedLoginAttempts)
	}
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	user := activeUser(t, "gerant@immogest.cm", "s3cret-pass")
	users := &stubUsers{byEmail: map[string]*models.User{user.Email: user}}
	svc, err := NewService(users, newStubSessions(), testJWT())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	for i := 0; i < maxFailedAttempts; i++ {
		_, _ = svc.Login(context.Background(), user.Email, "wrong")
	}
	if user.IsActive {
		t.Fatal("expected account locked after repeated failures")
	}

	_, gotErr := svc.Login(context.Background(), user.Email, "s3cret-pass")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for locked account, got %v", gotErr)
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	svc, err := NewService(&stubUsers{byEmail: map[string]*models.User{}}, newStubSessions(), testJWT())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	_, gotErr := svc.Login(context.Background(), "nobody@immogest.cm", "whatever")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", gotErr)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := newStubSessions()
	svc, err := NewService(&stubUsers{byEmail: map[string]*models.User{}}, sessions, testJWT())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Logout(context.Background(), "jti-123"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "jti-123" {
		t.Fatalf("expected revoked session, got %v", sessions.revoked)
	}
}
