package migrate

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/config"
	"github.com/immogest/immogest-backend/pkg/db"
	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/logger"
)

// Models lists every entity the schema migrator manages, in dependency order.
func Models() []any {
	return []any{
		&models.User{},
		&models.Tenant{},
		&models.Building{},
		&models.Property{},
		&models.Contrat{},
		&models.Payment{},
		&models.UserPropertyPermission{},
	}
}

// Run applies the GORM auto-migration for every managed model.
func Run(ctx context.Context, conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db connection is required")
	}
	if err := conn.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	return nil
}

// MaybeRunDev executes migrations automatically when the app is running in dev
// mode and the flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.App.AutoMigrate {
		return nil
	}

	ctx = logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(ctx, "running schema auto-migration (dev auto-run)")

	if err := Run(ctx, client.DB()); err != nil {
		return err
	}

	logg.Info(ctx, "schema auto-migration completed")
	return nil
}
