package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// Repository persists payments.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Order("due_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumByStatus totals payment amounts grouped by status in one pass.
func (r *Repository) SumByStatus(ctx context.Context) (map[enums.PaymentStatus]decimal.Decimal, error) {
	type row struct {
		Status enums.PaymentStatus
		Total  decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("status, COALESCE(SUM(amount), 0) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[enums.PaymentStatus]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.Status] = r.Total
	}
	return totals, nil
}

func (r *Repository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *Repository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id).Error
}
