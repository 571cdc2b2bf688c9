package tenants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type tenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	List(ctx context.Context) ([]models.Tenant, error)
	Create(ctx context.Context, tenant *models.Tenant) error
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes tenant operations.
type Service interface {
	List(ctx context.Context) ([]TenantDTO, error)
	Create(ctx context.Context, input CreateTenantInput) (*TenantDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*TenantDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo tenantRepository
}

func NewService(repo tenantRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tenant repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]TenantDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing tenants")
	}
	result := make([]TenantDTO, 0, len(all))
	for i := range all {
		result = append(result, *fromModel(&all[i]))
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, input CreateTenantInput) (*TenantDTO, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}
	if strings.TrimSpace(input.IDNumber) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "id_number is required")
	}

	tenant := &models.Tenant{
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		Email:                 input.Email,
		Phone:                 input.Phone,
		Address:               input.Address,
		IDNumber:              input.IDNumber,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
	}

	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating tenant")
	}
	return fromModel(tenant), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*TenantDTO, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tenant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading tenant")
	}

	if input.FirstName != nil {
		tenant.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		tenant.LastName = input.LastName
	}
	if input.Email != nil {
		tenant.Email = input.Email
	}
	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}
	if input.Address != nil {
		tenant.Address = *input.Address
	}
	if input.EmergencyContactName != nil {
		tenant.EmergencyContactName = input.EmergencyContactName
	}
	if input.EmergencyContactPhone != nil {
		tenant.EmergencyContactPhone = input.EmergencyContactPhone
	}

	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating tenant")
	}
	return fromModel(tenant), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "tenant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading tenant")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting tenant")
	}
	return nil
}
