package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type paymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contratFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Contrat, error)
}

type tenantFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

// Service exposes rent ledger operations.
type Service interface {
	List(ctx context.Context) ([]PaymentDTO, error)
	Create(ctx context.Context, input CreatePaymentInput) (*PaymentDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*PaymentDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     paymentRepository
	contrats contratFinder
	tenants  tenantFinder
}

func NewService(repo paymentRepository, contrats contratFinder, tenants tenantFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if contrats == nil {
		return nil, fmt.Errorf("contrat finder required")
	}
	if tenants == nil {
		return nil, fmt.Errorf("tenant finder required")
	}
	return &service{repo: repo, contrats: contrats, tenants: tenants}, nil
}

func (s *service) List(ctx context.Context) ([]PaymentDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing payments")
	}
	result := make([]PaymentDTO, 0, len(all))
	for i := range all {
		contratNumber, tenantName := s.displayNames(ctx, all[i].ContratID)
		result = append(result, *fromModel(&all[i], contratNumber, tenantName))
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, input CreatePaymentInput) (*PaymentDTO, error) {
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if input.DueDate.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "due_date is required")
	}

	status := input.Status
	if status == "" {
		status = enums.PaymentStatusPending
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment status")
	}
	method := input.PaymentMethod
	if method == "" {
		method = enums.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	contrat, err := s.contrats.FindByID(ctx, input.ContratID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "contrat does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading contrat")
	}

	payment := &models.Payment{
		ReferenceNumber: generateReferenceNumber(contrat.ContratNumber, time.Now()),
		ContratID:       input.ContratID,
		Amount:          input.Amount,
		DueDate:         input.DueDate,
		PaymentDate:     input.PaymentDate,
		Status:          status,
		PaymentMethod:   method,
		Notes:           input.Notes,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating payment")
	}
	_, tenantName := s.displayNames(ctx, payment.ContratID)
	return fromModel(payment, contrat.ContratNumber, tenantName), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*PaymentDTO, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading payment")
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() || input.Amount.IsZero() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
		}
		payment.Amount = *input.Amount
	}
	if input.DueDate != nil {
		payment.DueDate = *input.DueDate
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = input.PaymentDate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment status")
		}
		payment.Status = *input.Status
		// Marking a payment PAID without a date stamps it now.
		if payment.Status == enums.PaymentStatusPaid && payment.PaymentDate == nil {
			now := time.Now()
			payment.PaymentDate = &now
		}
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
		}
		payment.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating payment")
	}
	contratNumber, tenantName := s.displayNames(ctx, payment.ContratID)
	return fromModel(payment, contratNumber, tenantName), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading payment")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting payment")
	}
	return nil
}

func (s *service) displayNames(ctx context.Context, contratID uuid.UUID) (string, string) {
	contrat, err := s.contrats.FindByID(ctx, contratID)
	if err != nil {
		return "", ""
	}
	tenant, err := s.tenants.FindByID(ctx, contrat.TenantID)
	if err != nil {
		return contrat.ContratNumber, ""
	}
	name := tenant.FirstName
	if tenant.LastName != nil && *tenant.LastName != "" {
		name = tenant.FirstName + " " + *tenant.LastName
	}
	return contrat.ContratNumber, name
}

// generateReferenceNumber ties a manual ledger entry to its contrat and the
// day it was recorded, e.g. "PAY-CTR-20260301-0042-20260315".
func generateReferenceNumber(contratNumber string, now time.Time) string {
	return fmt.Sprintf("PAY-%s-%s", contratNumber, now.Format("20060102"))
}
