package migrate

import (
	"context"
	"fmt"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
)

// MaybeRunDev migrates the schema automatically when the app runs in dev mode
// with the auto-migrate flag on. Sqlite deployments use the GORM schema sync
// since the SQL migrations are written for Postgres.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})

	if cfg.FeatureFlags.UseSQLite {
		logg.Info(ctx, "syncing sqlite schema (dev auto-run)")
		if err := client.DB().WithContext(ctx).AutoMigrate(
			&models.User{},
			&models.Session{},
			&models.Attachment{},
			&models.IDCard{},
			&models.Application{},
		); err != nil {
			return fmt.Errorf("syncing sqlite schema: %w", err)
		}
		logg.Info(ctx, "sqlite schema in sync")
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running goose migrations (dev auto-run)")
	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}
