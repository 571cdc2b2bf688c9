package models

import (
	"time"

	"github.com/google/uuid"
)

// Building owns zero or more properties.
type Building struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID     uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;not null"`
	Address     string    `gorm:"column:address;not null"`
	City        string    `gorm:"column:city;not null;index"`
	PostalCode  string    `gorm:"column:postal_code;not null"`
	Country     string    `gorm:"column:country;not null;default:'Cameroun'"`
	Latitude    *float64  `gorm:"column:latitude"`
	Longitude   *float64  `gorm:"column:longitude"`
	FloorCount  *int      `gorm:"column:floor_count"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
