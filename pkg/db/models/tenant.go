package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a renter who can hold one or more contrats.
type Tenant struct {
	ID                    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName             string    `gorm:"column:first_name;not null"`
	LastName              *string   `gorm:"column:last_name"`
	Email                 *string   `gorm:"column:email"`
	Phone                 string    `gorm:"column:phone;not null"`
	Address               string    `gorm:"column:address;type:text;not null"`
	IDNumber              string    `gorm:"column:id_number;not null"`
	EmergencyContactName  *string   `gorm:"column:emergency_contact_name"`
	EmergencyContactPhone *string   `gorm:"column:emergency_contact_phone"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
