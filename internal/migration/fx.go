package migration

import (
	auditdomain "github.com/paylift/srbooster/internal/audit/domain"
	"github.com/paylift/srbooster/internal/config"
	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	requestdomain "github.com/paylift/srbooster/internal/request/domain"
	"github.com/paylift/srbooster/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql installs are dev/test targets; AutoMigrate
			// keeps them in sync without dialect-specific SQL.
			if err := conn.AutoMigrate(
				&featuredomain.Feature{},
				&merchantdomain.Merchant{},
				&requestdomain.Request{},
				&auditdomain.AuditLog{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedCatalog {
			return seed.EnsureCatalog(conn)
		}
		return nil
	}),
)
