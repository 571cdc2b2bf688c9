package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/enums"
)

// Contrat is a lease linking one property and one tenant.
type Contrat struct {
	ID               uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ContratNumber    string                 `gorm:"column:contrat_number;not null;uniqueIndex"`
	PropertyID       uuid.UUID              `gorm:"column:property_id;type:uuid;not null;index"`
	TenantID         uuid.UUID              `gorm:"column:tenant_id;type:uuid;not null;index"`
	StartDate        time.Time              `gorm:"column:start_date;type:date;not null;index"`
	EndDate          time.Time              `gorm:"column:end_date;type:date;not null;index"`
	MonthlyRent      decimal.Decimal        `gorm:"column:monthly_rent;type:numeric(12,2);not null"`
	SecurityDeposit  *decimal.Decimal       `gorm:"column:security_deposit;type:numeric(12,2)"`
	Charges          *decimal.Decimal       `gorm:"column:charges;type:numeric(12,2)"`
	PaymentFrequency enums.PaymentFrequency `gorm:"column:payment_frequency;type:text;not null;default:'MONTHLY'"`
	Status           enums.ContratStatus    `gorm:"column:status;type:text;not null;default:'DRAFT'"`
	Terms            *string                `gorm:"column:terms;type:text"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
