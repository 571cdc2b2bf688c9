package contrats

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type stubContratRepo struct {
	contrats map[uuid.UUID]*models.Contrat
}

func newStubContratRepo(contrats ...*models.Contrat) *stubContratRepo {
	repo := &stubContratRepo{contrats: map[uuid.UUID]*models.Contrat{}}
	for _, c := range contrats {
		repo.contrats[c.ID] = c
	}
	return repo
}

func (s *stubContratRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Contrat, error) {
	if c, ok := s.contrats[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContratRepo) List(_ context.Context) ([]models.Contrat, error) {
	out := make([]models.Contrat, 0, len(s.contrats))
	for _, c := range s.contrats {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubContratRepo) Create(_ context.Context, contrat *models.Contrat) error {
	if contrat.ID == uuid.Nil {
		contrat.ID = uuid.New()
	}
	s.contrats[contrat.ID] = contrat
	return nil
}

func (s *stubContratRepo) Update(_ context.Context, contrat *models.Contrat) error {
	s.contrats[contrat.ID] = contrat
	return nil
}

func (s *stubContratRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.contrats, id)
	return nil
}

type stubProperties map[uuid.UUID]*models.Property

func (s stubProperties) FindByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubTenants map[uuid.UUID]*models.Tenant

func (s stubTenants) FindByID(_ context.Context, id uuid.UUID) (*models.Tenant, error) {
	if t, ok := s[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func fixtures() (stubProperties, stubTenants, uuid.UUID, uuid.UUID) {
	propertyID := uuid.New()
	tenantID := uuid.New()
	lastName := "Mbarga"
	properties := stubProperties{propertyID: {ID: propertyID, Name: "T2 Akwa"}}
	tenants := stubTenants{tenantID: {ID: tenantID, FirstName: "Serge", LastName: &lastName}}
	return properties, tenants, propertyID, tenantID
}

func TestCreateContratGeneratesNumber(t *testing.T) {
	properties, tenants, propertyID, tenantID := fixtures()
	svc, err := NewService(newStubContratRepo(), properties, tenants)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dto, err := svc.Create(context.Background(), CreateContratInput{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     start.AddDate(1, 0, 0),
		MonthlyRent: decimal.NewFromInt(450),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pattern := regexp.MustCompile(`^CTR-\d{8}-\d{4}$`)
	if !pattern.MatchString(dto.ContratNumber) {
		t.Fatalf("unexpected contrat number %q", dto.ContratNumber)
	}
	if dto.Status != enums.ContratStatusDraft {
		t.Fatalf("expected DRAFT default, got %s", dto.Status)
	}
	if dto.PaymentFrequency != enums.PaymentFrequencyMonthly {
		t.Fatalf("expected MONTHLY default, got %s", dto.PaymentFrequency)
	}
	if dto.TenantName != "Serge Mbarga" {
		t.Fatalf("expected joined tenant name, got %q", dto.TenantName)
	}
	if dto.PropertyName != "T2 Akwa" {
		t.Fatalf("expected joined property name, got %q", dto.PropertyName)
	}
}

func TestCreateContratRejectsUnknownProperty(t *testing.T) {
	_, tenants, _, tenantID := fixtures()
	svc, err := NewService(newStubContratRepo(), stubProperties{}, tenants)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	start := time.Now()
	_, gotErr := svc.Create(context.Background(), CreateContratInput{
		PropertyID:  uuid.New(),
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 6, 0),
		MonthlyRent: decimal.NewFromInt(300),
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestCreateContratRejectsInvertedDates(t *testing.T) {
	properties, tenants, propertyID, tenantID := fixtures()
	svc, err := NewService(newStubContratRepo(), properties, tenants)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	start := time.Now()
	_, gotErr := svc.Create(context.Background(), CreateContratInput{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, -1),
		MonthlyRent: decimal.NewFromInt(300),
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestUpdateContratStatusTransition(t *testing.T) {
	properties, tenants, propertyID, tenantID := fixtures()
	contrat := &models.Contrat{
		ID:               uuid.New(),
		ContratNumber:    "CTR-20260301-0042",
		PropertyID:       propertyID,
		TenantID:         tenantID,
		StartDate:        time.Now(),
		EndDate:          time.Now().AddDate(1, 0, 0),
		MonthlyRent:      decimal.NewFromInt(450),
		PaymentFrequency: enums.PaymentFrequencyMonthly,
		Status:           enums.ContratStatusDraft,
	}
	svc, err := NewService(newStubContratRepo(contrat), properties, tenants)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	status := enums.ContratStatusActive
	dto, err := svc.Update(context.Background(), contrat.ID, UpdateContratInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Status != enums.ContratStatusActive {
		t.Fatalf("expected ACTIVE, got %s", dto.Status)
	}
	if dto.ContratNumber != "CTR-20260301-0042" {
		t.Fatalf("contrat number must not change on update, got %q", dto.ContratNumber)
	}
}

func TestDeleteContratMissingIsNotFound(t *testing.T) {
	properties, tenants, _, _ := fixtures()
	svc, err := NewService(newStubContratRepo(), properties, tenants)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	gotErr := svc.Delete(context.Background(), uuid.New())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}
