package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/db"
	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/security"
)

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// Service exposes team management operations. Every mutation is owner-gated.
type Service interface {
	List(ctx context.Context, actor *models.User) ([]UserDTO, error)
	Create(ctx context.Context, actor *models.User, input CreateUserInput) (*UserDTO, error)
	Update(ctx context.Context, actor *models.User, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Deactivate(ctx context.Context, actor *models.User, id uuid.UUID) (*UserDTO, error)
}

type service struct {
	repo     userRepository
	password config.PasswordConfig
}

func NewService(repo userRepository, password config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo, password: password}, nil
}

func (s *service) List(ctx context.Context, actor *models.User) ([]UserDTO, error) {
	if err := requireOwner(actor); err != nil {
		return nil, err
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing users")
	}
	result := make([]UserDTO, 0, len(all))
	for i := range all {
		result = append(result, *fromModel(&all[i]))
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, actor *models.User, input CreateUserInput) (*UserDTO, error) {
	if err := requireOwner(actor); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "valid email is required")
	}
	if len(input.Password) < 8 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}
	role := input.Role
	if role == "" {
		role = enums.UserRoleViewer
	}
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}
	return fromModel(user), nil
}

func (s *service) Update(ctx context.Context, actor *models.User, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	if err := requireOwner(actor); err != nil {
		return nil, err
	}
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
		if actor.ID == user.ID && *input.Role != enums.UserRoleOwner {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "owners cannot demote themselves")
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		if actor.ID == user.ID && !*input.IsActive {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "owners cannot deactivate themselves")
		}
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating user")
	}
	return fromModel(user), nil
}

func (s *service) Deactivate(ctx context.Context, actor *models.User, id uuid.UUID) (*UserDTO, error) {
	inactive := false
	return s.Update(ctx, actor, id, UpdateUserInput{IsActive: &inactive})
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	return user, nil
}

func requireOwner(actor *models.User) error {
	if actor == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if actor.Role != enums.UserRoleOwner {
		return pkgerrors.New(pkgerrors.CodeForbidden, "owner role required")
	}
	return nil
}
