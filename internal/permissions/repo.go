package permissions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
)

// Repository loads access grants from the database.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListForUser returns every grant attached to the user, expired or not.
// Expiry filtering happens in the service so the fold stays testable.
func (r *Repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserPropertyPermission, error) {
	var grants []models.UserPropertyPermission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// Create persists a new grant.
func (r *Repository) Create(ctx context.Context, grant *models.UserPropertyPermission) error {
	return r.db.WithContext(ctx).Create(grant).Error
}

// DeleteForBuilding removes a user's grants scoped to one building.
func (r *Repository) DeleteForBuilding(ctx context.Context, userID, buildingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND building_id = ?", userID, buildingID).
		Delete(&models.UserPropertyPermission{}).Error
}
