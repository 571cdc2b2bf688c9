package contrats

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// ContratDTO carries the lease plus the display fields the list views join in.
type ContratDTO struct {
	ID                uuid.UUID              `json:"id"`
	ContratNumber     string                 `json:"contrat_number"`
	PropertyID        uuid.UUID              `json:"property_id"`
	PropertyName      string                 `json:"property_name,omitempty"`
	TenantID          uuid.UUID              `json:"tenant_id"`
	TenantName        string                 `json:"tenant_name,omitempty"`
	StartDate         time.Time              `json:"start_date"`
	EndDate           time.Time              `json:"end_date"`
	MonthlyRent       decimal.Decimal        `json:"monthly_rent"`
	SecurityDeposit   *decimal.Decimal       `json:"security_deposit,omitempty"`
	Charges           *decimal.Decimal       `json:"charges,omitempty"`
	PaymentFrequency  enums.PaymentFrequency `json:"payment_frequency"`
	Status            enums.ContratStatus    `json:"status"`
	Terms             *string                `json:"terms,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// CreateContratInput captures the fields accepted on creation.
type CreateContratInput struct {
	PropertyID       uuid.UUID
	TenantID         uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	MonthlyRent      decimal.Decimal
	SecurityDeposit  *decimal.Decimal
	Charges          *decimal.Decimal
	PaymentFrequency enums.PaymentFrequency
	Terms            *string
}

// UpdateContratInput captures the mutable fields; nil means untouched.
type UpdateContratInput struct {
	StartDate        *time.Time
	EndDate          *time.Time
	MonthlyRent      *decimal.Decimal
	SecurityDeposit  *decimal.Decimal
	Charges          *decimal.Decimal
	PaymentFrequency *enums.PaymentFrequency
	Status           *enums.ContratStatus
	Terms            *string
}

func fromModel(c *models.Contrat, propertyName, tenantName string) *ContratDTO {
	if c == nil {
		return nil
	}
	return &ContratDTO{
		ID:               c.ID,
		ContratNumber:    c.ContratNumber,
		PropertyID:       c.PropertyID,
		PropertyName:     propertyName,
		TenantID:         c.TenantID,
		TenantName:       tenantName,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		MonthlyRent:      c.MonthlyRent,
		SecurityDeposit:  c.SecurityDeposit,
		Charges:          c.Charges,
		PaymentFrequency: c.PaymentFrequency,
		Status:           c.Status,
		Terms:            c.Terms,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
