package middleware

import (
	"net/http"

	"github.com/immogest/immogest-backend/api/responses"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/logger"
)

// RequireOwner rejects requests from non-owner accounts.
func RequireOwner(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}
			if user.Role != enums.UserRoleOwner {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "owner role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
