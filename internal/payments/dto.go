package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// PaymentDTO carries a ledger entry plus the contrat and tenant labels the
// list views display alongside it.
type PaymentDTO struct {
	ID              uuid.UUID           `json:"id"`
	ReferenceNumber string              `json:"reference_number"`
	ContratID       uuid.UUID           `json:"contrat_id"`
	ContratNumber   string              `json:"contrat_number,omitempty"`
	TenantName      string              `json:"tenant_name,omitempty"`
	Amount          decimal.Decimal     `json:"amount"`
	DueDate         time.Time           `json:"due_date"`
	PaymentDate     *time.Time          `json:"payment_date,omitempty"`
	Status          enums.PaymentStatus `json:"status"`
	PaymentMethod   enums.PaymentMethod `json:"payment_method"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// CreatePaymentInput captures the fields accepted on creation.
type CreatePaymentInput struct {
	ContratID     uuid.UUID
	Amount        decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time
	Status        enums.PaymentStatus
	PaymentMethod enums.PaymentMethod
	Notes         string
}

// UpdatePaymentInput captures the mutable fields; nil means untouched.
type UpdatePaymentInput struct {
	Amount        *decimal.Decimal
	DueDate       *time.Time
	PaymentDate   *time.Time
	Status        *enums.PaymentStatus
	PaymentMethod *enums.PaymentMethod
	Notes         *string
}

func fromModel(p *models.Payment, contratNumber, tenantName string) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		ID:              p.ID,
		ReferenceNumber: p.ReferenceNumber,
		ContratID:       p.ContratID,
		ContratNumber:   contratNumber,
		TenantName:      tenantName,
		Amount:          p.Amount,
		DueDate:         p.DueDate,
		PaymentDate:     p.PaymentDate,
		Status:          p.Status,
		PaymentMethod:   p.PaymentMethod,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
