package buildings

import (
	"time"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// BuildingDTO is the transport shape, decorated with the caller's best
// permission on the building.
type BuildingDTO struct {
	ID                 uuid.UUID             `json:"id"`
	Name               string                `json:"name"`
	Address            string                `json:"address"`
	City               string                `json:"city"`
	PostalCode         string                `json:"postal_code"`
	Country            string                `json:"country"`
	Latitude           *float64              `json:"latitude"`
	Longitude          *float64              `json:"longitude"`
	FloorCount         *int                  `json:"floor_count"`
	Description        string                `json:"description"`
	UserBestPermission enums.PermissionLevel `json:"user_best_permission"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// CreateBuildingInput captures the fields accepted on creation.
type CreateBuildingInput struct {
	Name        string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Latitude    *float64
	Longitude   *float64
	FloorCount  *int
	Description string
}

// UpdateBuildingInput captures the mutable fields; nil means untouched.
type UpdateBuildingInput struct {
	Name        *string
	Address     *string
	City        *string
	PostalCode  *string
	Country     *string
	Latitude    *float64
	Longitude   *float64
	FloorCount  *int
	Description *string
}

func fromModel(b *models.Building, perm enums.PermissionLevel) *BuildingDTO {
	if b == nil {
		return nil
	}
	return &BuildingDTO{
		ID:                 b.ID,
		Name:               b.Name,
		Address:            b.Address,
		City:               b.City,
		PostalCode:         b.PostalCode,
		Country:            b.Country,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		FloorCount:         b.FloorCount,
		Description:        b.Description,
		UserBestPermission: perm,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
