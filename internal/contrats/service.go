package contrats

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type contratRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Contrat, error)
	List(ctx context.Context) ([]models.Contrat, error)
	Create(ctx context.Context, contrat *models.Contrat) error
	Update(ctx context.Context, contrat *models.Contrat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

type tenantFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

// Service exposes lease operations.
type Service interface {
	List(ctx context.Context) ([]ContratDTO, error)
	Create(ctx context.Context, input CreateContratInput) (*ContratDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateContratInput) (*ContratDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo       contratRepository
	properties propertyFinder
	tenants    tenantFinder
}

func NewService(repo contratRepository, properties propertyFinder, tenants tenantFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contrat repository required")
	}
	if properties == nil {
		return nil, fmt.Errorf("property finder required")
	}
	if tenants == nil {
		return nil, fmt.Errorf("tenant finder required")
	}
	return &service{repo: repo, properties: properties, tenants: tenants}, nil
}

func (s *service) List(ctx context.Context) ([]ContratDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing contrats")
	}
	result := make([]ContratDTO, 0, len(all))
	for i := range all {
		propertyName, tenantName := s.displayNames(ctx, &all[i])
		result = append(result, *fromModel(&all[i], propertyName, tenantName))
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, input CreateContratInput) (*ContratDTO, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end_date must be after start_date")
	}
	if input.MonthlyRent.IsNegative() || input.MonthlyRent.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "monthly_rent must be positive")
	}

	frequency := input.PaymentFrequency
	if frequency == "" {
		frequency = enums.PaymentFrequencyMonthly
	}
	if !frequency.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment frequency")
	}

	property, err := s.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "property does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading property")
	}
	tenant, err := s.tenants.FindByID(ctx, input.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "tenant does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading tenant")
	}

	contrat := &models.Contrat{
		ContratNumber:    generateContratNumber(time.Now()),
		PropertyID:       input.PropertyID,
		TenantID:         input.TenantID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		MonthlyRent:      input.MonthlyRent,
		SecurityDeposit:  input.SecurityDeposit,
		Charges:          input.Charges,
		PaymentFrequency: frequency,
		Status:           enums.ContratStatusDraft,
		Terms:            input.Terms,
	}

	if err := s.repo.Create(ctx, contrat); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating contrat")
	}
	return fromModel(contrat, property.Name, tenantDisplayName(tenant)), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateContratInput) (*ContratDTO, error) {
	contrat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "contrat not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading contrat")
	}

	if input.StartDate != nil {
		contrat.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		contrat.EndDate = *input.EndDate
	}
	if contrat.EndDate.Before(contrat.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end_date must be after start_date")
	}
	if input.MonthlyRent != nil {
		if input.MonthlyRent.IsNegative() || input.MonthlyRent.IsZero() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "monthly_rent must be positive")
		}
		contrat.MonthlyRent = *input.MonthlyRent
	}
	if input.SecurityDeposit != nil {
		contrat.SecurityDeposit = input.SecurityDeposit
	}
	if input.Charges != nil {
		contrat.Charges = input.Charges
	}
	if input.PaymentFrequency != nil {
		if !input.PaymentFrequency.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment frequency")
		}
		contrat.PaymentFrequency = *input.PaymentFrequency
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid contrat status")
		}
		contrat.Status = *input.Status
	}
	if input.Terms != nil {
		contrat.Terms = input.Terms
	}

	if err := s.repo.Update(ctx, contrat); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating contrat")
	}
	propertyName, tenantName := s.displayNames(ctx, contrat)
	return fromModel(contrat, propertyName, tenantName), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "contrat not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading contrat")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting contrat")
	}
	return nil
}

// displayNames joins property and tenant labels; lookup failures leave them blank
// rather than failing the whole listing.
func (s *service) displayNames(ctx context.Context, contrat *models.Contrat) (string, string) {
	var propertyName, tenantName string
	if property, err := s.properties.FindByID(ctx, contrat.PropertyID); err == nil {
		propertyName = property.Name
	}
	if tenant, err := s.tenants.FindByID(ctx, contrat.TenantID); err == nil {
		tenantName = tenantDisplayName(tenant)
	}
	return propertyName, tenantName
}

func tenantDisplayName(tenant *models.Tenant) string {
	if tenant == nil {
		return ""
	}
	if tenant.LastName != nil && *tenant.LastName != "" {
		return tenant.FirstName + " " + *tenant.LastName
	}
	return tenant.FirstName
}

// generateContratNumber builds "CTR-YYYYMMDD-NNNN" with a random 4-digit suffix.
func generateContratNumber(now time.Time) string {
	var buf [2]byte
	suffix := 0
	if _, err := rand.Read(buf[:]); err == nil {
		suffix = int(binary.BigEndian.Uint16(buf[:])) % 10000
	}
	return fmt.Sprintf("CTR-%s-%04d", now.Format("20060102"), suffix)
}
