package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/immogest/immogest-backend/api/controllers"
	"github.com/immogest/immogest-backend/api/middleware"
	"github.com/immogest/immogest-backend/internal/auth"
	"github.com/immogest/immogest-backend/internal/buildings"
	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/internal/dashboard"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/internal/tenants"
	"github.com/immogest/immogest-backend/internal/users"
	"github.com/immogest/immogest-backend/pkg/auth/session"
	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessions session.AccessSessionChecker,
	userLoader middleware.UserLoader,
	authService auth.Service,
	dashboardService dashboard.Service,
	tenantService tenants.Service,
	buildingService buildings.Service,
	propertyService properties.Service,
	contratService contrats.Service,
	paymentService payments.Service,
	userService users.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Post("/api/auth/login", controllers.Login(authService, logg))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, userLoader, logg))

		r.Post("/auth/logout", controllers.Logout(authService, logg))

		r.Get("/dashboard", controllers.Dashboard(dashboardService, logg))
		r.Get("/dashboard/permissions", controllers.DashboardPermissions(dashboardService, logg))

		r.Route("/tenants", func(r chi.Router) {
			r.Get("/", controllers.TenantList(tenantService, logg))
			r.Post("/", controllers.TenantCreate(tenantService, logg))
			r.Put("/{id}", controllers.TenantUpdate(tenantService, logg))
			r.Delete("/{id}", controllers.TenantDelete(tenantService, logg))
		})

		r.Route("/buildings", func(r chi.Router) {
			r.Get("/", controllers.BuildingList(buildingService, logg))
			r.Post("/", controllers.BuildingCreate(buildingService, logg))
			r.Put("/{id}", controllers.BuildingUpdate(buildingService, logg))
			r.Delete("/{id}", controllers.BuildingDelete(buildingService, logg))
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", controllers.PropertyList(propertyService, logg))
			r.Post("/", controllers.PropertyCreate(propertyService, logg))
			r.Put("/{id}", controllers.PropertyUpdate(propertyService, logg))
			r.Delete("/{id}", controllers.PropertyDelete(propertyService, logg))
		})

		r.Route("/contrats", func(r chi.Router) {
			r.Get("/", controllers.ContratList(contratService, logg))
			r.Post("/", controllers.ContratCreate(contratService, logg))
			r.Put("/{id}", controllers.ContratUpdate(contratService, logg))
			r.Delete("/{id}", controllers.ContratDelete(contratService, logg))
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", controllers.PaymentList(paymentService, logg))
			r.Post("/", controllers.PaymentCreate(paymentService, logg))
			r.Put("/{id}", controllers.PaymentUpdate(paymentService, logg))
			r.Delete("/{id}", controllers.PaymentDelete(paymentService, logg))
		})

		r.Route("/team", func(r chi.Router) {
			r.Use(middleware.RequireOwner(logg))
			r.Get("/", controllers.TeamList(userService, logg))
			r.Post("/", controllers.TeamCreate(userService, logg))
			r.Put("/{id}", controllers.TeamUpdate(userService, logg))
			r.Post("/{id}/deactivate", controllers.TeamDeactivate(userService, logg))
		})
	})

	return r
}
