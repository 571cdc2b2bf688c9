package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/immogest/immogest-backend/api/routes"
	"github.com/immogest/immogest-backend/internal/auth"
	"github.com/immogest/immogest-backend/internal/buildings"
	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/internal/dashboard"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/internal/statistics"
	"github.com/immogest/immogest-backend/internal/tenants"
	"github.com/immogest/immogest-backend/internal/users"
	"github.com/immogest/immogest-backend/pkg/auth/session"
	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/db"
	"github.com/immogest/immogest-backend/pkg/logger"
	"github.com/immogest/immogest-backend/pkg/migrate"
	"github.com/immogest/immogest-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	tenantRepo := tenants.NewRepository(dbClient.DB())
	buildingRepo := buildings.NewRepository(dbClient.DB())
	propertyRepo := properties.NewRepository(dbClient.DB())
	contratRepo := contrats.NewRepository(dbClient.DB())
	paymentRepo := payments.NewRepository(dbClient.DB())
	grantsRepo := permissions.NewRepository(dbClient.DB())

	permissionService, err := permissions.NewService(grantsRepo, redisClient, cfg.Permissions.CacheTTL, logg)
	exitOnError(logg, "permission service", err)

	authService, err := auth.NewService(userRepo, sessionManager, cfg.JWT)
	exitOnError(logg, "auth service", err)

	userService, err := users.NewService(userRepo, cfg.Password)
	exitOnError(logg, "user service", err)

	tenantService, err := tenants.NewService(tenantRepo)
	exitOnError(logg, "tenant service", err)

	buildingService, err := buildings.NewService(buildingRepo, permissionService)
	exitOnError(logg, "building service", err)

	propertyService, err := properties.NewService(propertyRepo, permissionService)
	exitOnError(logg, "property service", err)

	contratService, err := contrats.NewService(contratRepo, propertyRepo, tenantRepo)
	exitOnError(logg, "contrat service", err)

	paymentService, err := payments.NewService(paymentRepo, contratRepo, tenantRepo)
	exitOnError(logg, "payment service", err)

	statsService, err := statistics.NewService(paymentRepo, contratRepo, propertyRepo)
	exitOnError(logg, "statistics service", err)

	dashboardService, err := dashboard.NewService(
		userService,
		tenantService,
		propertyService,
		buildingService,
		contratService,
		paymentService,
		statsService,
		permissionService,
	)
	exitOnError(logg, "dashboard service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			sessionManager,
			userRepo,
			authService,
			dashboardService,
			tenantService,
			buildingService,
			propertyService,
			contratService,
			paymentService,
			userService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func exitOnError(logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+resource, err)
	os.Exit(1)
}
