package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/api/middleware"
	"github.com/immogest/immogest-backend/api/responses"
	"github.com/immogest/immogest-backend/api/validators"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/logger"
)

type propertyCreateRequest struct {
	BuildingID    uuid.UUID       `json:"building_id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Type          string          `json:"type" validate:"required"`
	Status        string          `json:"status,omitempty"`
	Floor         *int            `json:"floor,omitempty"`
	DoorNumber    *string         `json:"door_number,omitempty"`
	SurfaceArea   float64         `json:"surface_area" validate:"required,min=1"`
	RoomCount     int             `json:"room_count" validate:"required,min=1"`
	BedroomCount  *int            `json:"bedroom_count,omitempty" validate:"omitempty,min=0"`
	BathroomCount *int            `json:"bathroom_count,omitempty" validate:"omitempty,min=0"`
	HasParking    bool            `json:"has_parking,omitempty"`
	HasBalcony    bool            `json:"has_balcony,omitempty"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	Description   string          `json:"description,omitempty"`
}

func (r propertyCreateRequest) toInput() (properties.CreatePropertyInput, error) {
	propType, err := enums.ParsePropertyType(r.Type)
	if err != nil {
		return properties.CreatePropertyInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
	}

	var status enums.PropertyStatus
	if r.Status != "" {
		status, err = enums.ParsePropertyStatus(r.Status)
		if err != nil {
			return properties.CreatePropertyInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
	}

	return properties.CreatePropertyInput{
		BuildingID:    r.BuildingID,
		Name:          r.Name,
		Type:          propType,
		Status:        status,
		Floor:         r.Floor,
		DoorNumber:    r.DoorNumber,
		SurfaceArea:   r.SurfaceArea,
		RoomCount:     r.RoomCount,
		BedroomCount:  r.BedroomCount,
		BathroomCount: r.BathroomCount,
		HasParking:    r.HasParking,
		HasBalcony:    r.HasBalcony,
		MonthlyRent:   r.MonthlyRent,
		Description:   r.Description,
	}, nil
}

type propertyUpdateRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Type          *string          `json:"type,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Floor         *int             `json:"floor,omitempty"`
	DoorNumber    *string          `json:"door_number,omitempty"`
	SurfaceArea   *float64         `json:"surface_area,omitempty" validate:"omitempty,min=1"`
	RoomCount     *int             `json:"room_count,omitempty" validate:"omitempty,min=1"`
	BedroomCount  *int             `json:"bedroom_count,omitempty" validate:"omitempty,min=0"`
	BathroomCount *int             `json:"bathroom_count,omitempty" validate:"omitempty,min=0"`
	HasParking    *bool            `json:"has_parking,omitempty"`
	HasBalcony    *bool            `json:"has_balcony,omitempty"`
	MonthlyRent   *decimal.Decimal `json:"monthly_rent,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

func (r propertyUpdateRequest) toInput() (properties.UpdatePropertyInput, error) {
	input := properties.UpdatePropertyInput{
		Name:          r.Name,
		Floor:         r.Floor,
		DoorNumber:    r.DoorNumber,
		SurfaceArea:   r.SurfaceArea,
		RoomCount:     r.RoomCount,
		BedroomCount:  r.BedroomCount,
		BathroomCount: r.BathroomCount,
		HasParking:    r.HasParking,
		HasBalcony:    r.HasBalcony,
		MonthlyRent:   r.MonthlyRent,
		Description:   r.Description,
	}

	if r.Type != nil {
		propType, err := enums.ParsePropertyType(*r.Type)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		input.Type = &propType
	}
	if r.Status != nil {
		status, err := enums.ParsePropertyStatus(*r.Status)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}

	return input, nil
}

func PropertyList(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		list, err := svc.ListForUser(r.Context(), user)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"properties": list})
	}
}

func PropertyCreate(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		var payload propertyCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := middleware.UserFromContext(r.Context())
		created, err := svc.Create(r.Context(), user, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]*properties.PropertyDTO{"property": created})
	}
}

func PropertyUpdate(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload propertyUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := middleware.UserFromContext(r.Context())
		updated, err := svc.Update(r.Context(), user, id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]*properties.PropertyDTO{"property": updated})
	}
}

func PropertyDelete(svc properties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := middleware.UserFromContext(r.Context())
		if err := svc.Delete(r.Context(), user, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}
