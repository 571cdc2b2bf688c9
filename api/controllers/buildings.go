package controllers

import (
	"net/http"

	"github.com/immogest/immogest-backend/api/middleware"
	"github.com/immogest/immogest-backend/api/responses"
	"github.com/immogest/immogest-backend/api/validators"
	"github.com/immogest/immogest-backend/internal/buildings"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/logger"
)

type buildingCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	PostalCode  string   `json:"postal_code,omitempty"`
	Country     string   `json:"country,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	FloorCount  *int     `json:"floor_count,omitempty" validate:"omitempty,min=0"`
	Description string   `json:"description,omitempty"`
}

func (r buildingCreateRequest) toInput() buildings.CreateBuildingInput {
	return buildings.CreateBuildingInput{
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		FloorCount:  r.FloorCount,
		Description: r.Description,
	}
}

type buildingUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	FloorCount  *int     `json:"floor_count,omitempty" validate:"omitempty,min=0"`
	Description *string  `json:"description,omitempty"`
}

func (r buildingUpdateRequest) toInput() buildings.UpdateBuildingInput {
	return buildings.UpdateBuildingInput{
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		FloorCount:  r.FloorCount,
		Description: r.Description,
	}
}

func BuildingList(svc buildings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "building service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		list, err := svc.ListForUser(r.Context(), user)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"buildings": list})
	}
}

func BuildingCreate(svc buildings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "building service unavailable"))
			return
		}

		var payload buildingCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := middleware.UserFromContext(r.Context())
		created, err := svc.Create(r.Context(), user, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]*buildings.BuildingDTO{"building": created})
	}
}

func BuildingUpdate(svc buildings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "building service unavailable"))
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload buildingUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := middleware.UserFromContext(r.Context())
		updated, err := svc.Update(r.Context(), user, id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]*buildings.BuildingDTO{"building": updated})
	}
}

func BuildingDelete(svc buildings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "building service unavailable"))
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
