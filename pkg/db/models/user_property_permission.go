package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPropertyPermission is a per-building or per-property access grant.
// Exactly one of BuildingID / PropertyID is expected to be set.
type UserPropertyPermission struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	BuildingID *uuid.UUID `gorm:"column:building_id;type:uuid;index"`
	PropertyID *uuid.UUID `gorm:"column:property_id;type:uuid;index"`
	CanView    bool       `gorm:"column:can_view;not null;default:true"`
	CanCreate  bool       `gorm:"column:can_create;not null;default:false"`
	CanUpdate  bool       `gorm:"column:can_update;not null;default:false"`
	CanDelete  bool       `gorm:"column:can_delete;not null;default:false"`
	GrantedBy  *uuid.UUID `gorm:"column:granted_by;type:uuid"`
	GrantedAt  time.Time  `gorm:"column:granted_at;autoCreateTime"`
	ExpiresAt  *time.Time `gorm:"column:expires_at"`
}
