package tenants

import (
	"time"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/pkg/db/models"
)

// TenantDTO is the transport shape. The id number stays server-side.
type TenantDTO struct {
	ID                    uuid.UUID `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              *string   `json:"last_name"`
	Email                 *string   `json:"email"`
	Phone                 string    `json:"phone"`
	Address               string    `json:"address"`
	EmergencyContactName  *string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CreateTenantInput captures the fields accepted on creation.
type CreateTenantInput struct {
	FirstName             string
	LastName              *string
	Email                 *string
	Phone                 string
	Address               string
	IDNumber              string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// UpdateTenantInput captures the mutable fields; nil means untouched.
type UpdateTenantInput struct {
	FirstName             *string
	LastName              *string
	Email                 *string
	Phone                 *string
	Address               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

func fromModel(t *models.Tenant) *TenantDTO {
	if t == nil {
		return nil
	}
	return &TenantDTO{
		ID:                    t.ID,
		FirstName:             t.FirstName,
		LastName:              t.LastName,
		Email:                 t.Email,
		Phone:                 t.Phone,
		Address:               t.Address,
		EmergencyContactName:  t.EmergencyContactName,
		EmergencyContactPhone: t.EmergencyContactPhone,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}
