package properties

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// PropertyDTO is the transport shape, decorated with the caller's permission
// on the parent building.
type PropertyDTO struct {
	ID                 uuid.UUID             `json:"id"`
	BuildingID         uuid.UUID             `json:"building_id"`
	ReferenceCode      string                `json:"reference_code"`
	Name               string                `json:"name"`
	Type               enums.PropertyType    `json:"type"`
	Status             enums.PropertyStatus  `json:"status"`
	Floor              *int                  `json:"floor"`
	DoorNumber         *string               `json:"door_number,omitempty"`
	SurfaceArea        float64               `json:"surface_area"`
	RoomCount          int                   `json:"room_count"`
	BedroomCount       *int                  `json:"bedroom_count"`
	BathroomCount      *int                  `json:"bathroom_count"`
	HasParking         bool                  `json:"has_parking"`
	HasBalcony         bool                  `json:"has_balcony"`
	MonthlyRent        decimal.Decimal       `json:"monthly_rent"`
	Description        string                `json:"description"`
	BuildingPermission enums.PermissionLevel `json:"building_permission"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// CreatePropertyInput captures the fields accepted on creation.
type CreatePropertyInput struct {
	BuildingID    uuid.UUID
	Name          string
	Type          enums.PropertyType
	Status        enums.PropertyStatus
	Floor         *int
	DoorNumber    *string
	SurfaceArea   float64
	RoomCount     int
	BedroomCount  *int
	BathroomCount *int
	HasParking    bool
	HasBalcony    bool
	MonthlyRent   decimal.Decimal
	Description   string
}

// UpdatePropertyInput captures the mutable fields; nil means untouched.
type UpdatePropertyInput struct {
	Name          *string
	Type          *enums.PropertyType
	Status        *enums.PropertyStatus
	Floor         *int
	DoorNumber    *string
	SurfaceArea   *float64
	RoomCount     *int
	BedroomCount  *int
	BathroomCount *int
	HasParking    *bool
	HasBalcony    *bool
	MonthlyRent   *decimal.Decimal
	Description   *string
}

func fromModel(p *models.Property, perm enums.PermissionLevel) *PropertyDTO {
	if p == nil {
		return nil
	}
	return &PropertyDTO{
		ID:                 p.ID,
		BuildingID:         p.BuildingID,
		ReferenceCode:      p.ReferenceCode,
		Name:               p.Name,
		Type:               p.Type,
		Status:             p.Status,
		Floor:              p.Floor,
		DoorNumber:         p.DoorNumber,
		SurfaceArea:        p.SurfaceArea,
		RoomCount:          p.RoomCount,
		BedroomCount:       p.BedroomCount,
		BathroomCount:      p.BathroomCount,
		HasParking:         p.HasParking,
		HasBalcony:         p.HasBalcony,
		MonthlyRent:        p.MonthlyRent,
		Description:        p.Description,
		BuildingPermission: perm,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
