package controllers

import (
	"net/http"

	"github.com/immogest/immogest-backend/api/middleware"
	"github.com/immogest/immogest-backend/api/responses"
	"github.com/immogest/immogest-backend/internal/dashboard"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/logger"
)

// Dashboard returns the full first-load payload for the signed-in user.
func Dashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		payload, err := svc.Build(r.Context(), user)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, payload)
	}
}

// DashboardPermissions returns just the caller's scope permissions.
func DashboardPermissions(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		global, err := svc.Permissions(r.Context(), user)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, global)
	}
}
