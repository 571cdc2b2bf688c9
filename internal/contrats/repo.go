package contrats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// Repository persists contrats.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Contrat, error) {
	var contrat models.Contrat
	if err := r.db.WithContext(ctx).First(&contrat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contrat, nil
}

func (r *Repository) List(ctx context.Context) ([]models.Contrat, error) {
	var contrats []models.Contrat
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contrats).Error; err != nil {
		return nil, err
	}
	return contrats, nil
}

// CountByStatus returns how many contrats sit in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status enums.ContratStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Contrat{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *Repository) Create(ctx context.Context, contrat *models.Contrat) error {
	return r.db.WithContext(ctx).Create(contrat).Error
}

func (r *Repository) Update(ctx context.Context, contrat *models.Contrat) error {
	return r.db.WithContext(ctx).Save(contrat).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Contrat{}, "id = ?", id).Error
}
