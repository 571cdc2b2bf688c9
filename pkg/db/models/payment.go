package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/enums"
)

// Payment is one rent ledger entry belonging to a contrat.
type Payment struct {
	ID              uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ReferenceNumber string              `gorm:"column:reference_number;not null;uniqueIndex"`
	ContratID       uuid.UUID           `gorm:"column:contrat_id;type:uuid;not null;index"`
	Amount          decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null"`
	DueDate         time.Time           `gorm:"column:due_date;type:date;not null;index"`
	PaymentDate     *time.Time          `gorm:"column:payment_date"`
	Status          enums.PaymentStatus `gorm:"column:status;type:text;not null;default:'PENDING'"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;type:text;not null;default:'CASH'"`
	Notes           string              `gorm:"column:notes;type:text"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
