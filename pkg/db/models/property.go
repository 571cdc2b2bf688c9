package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/enums"
)

// Property is a rentable unit inside exactly one building.
type Property struct {
	ID            uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BuildingID    uuid.UUID            `gorm:"column:building_id;type:uuid;not null;index"`
	OwnerID       uuid.UUID            `gorm:"column:owner_id;type:uuid;not null;index"`
	ReferenceCode string               `gorm:"column:reference_code;not null;uniqueIndex"`
	Name          string               `gorm:"column:name;not null"`
	Type          enums.PropertyType   `gorm:"column:type;type:text;not null"`
	Status        enums.PropertyStatus `gorm:"column:status;type:text;not null;default:'VACANT'"`
	Floor         *int                 `gorm:"column:floor"`
	DoorNumber    *string              `gorm:"column:door_number"`
	SurfaceArea   float64              `gorm:"column:surface_area;not null"`
	RoomCount     int                  `gorm:"column:room_count;not null"`
	BedroomCount  *int                 `gorm:"column:bedroom_count"`
	BathroomCount *int                 `gorm:"column:bathroom_count"`
	HasParking    bool                 `gorm:"column:has_parking;not null;default:false"`
	HasBalcony    bool                 `gorm:"column:has_balcony;not null;default:false"`
	MonthlyRent   decimal.Decimal      `gorm:"column:monthly_rent;type:numeric(12,2);not null"`
	Description   string               `gorm:"column:description;type:text"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
