package buildings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
)

// Repository persists buildings.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	var building models.Building
	if err := r.db.WithContext(ctx).First(&building, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &building, nil
}

// List returns every building, oldest first so display order is stable.
func (r *Repository) List(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

func (r *Repository) Create(ctx context.Context, building *models.Building) error {
	return r.db.WithContext(ctx).Create(building).Error
}

func (r *Repository) Update(ctx context.Context, building *models.Building) error {
	return r.db.WithContext(ctx).Save(building).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Building{}, "id = ?", id).Error
}
