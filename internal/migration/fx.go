package migration

import (
	"github.com/pawhaus/boarding/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// Embedded migrations target postgres; sqlite is only used by tests
		// which auto-migrate their own schema.
		if cfg.DBType != "postgres" || !cfg.AutoMigrate {
			return nil
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		return RunMigrations(sqlDB)
	}),
)
