// Package gormdb contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL, MySQL and SQLite are supported behind the same repositories.
package gormdb

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"todolist/config"
	"todolist/internal/domain/lifecycle"
	"todolist/internal/errors"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its pool to the fx lifecycle.
// Tables are migrated on start when database.autoMigrate is set.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	driver := params.Config.Database.Driver

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", driver)
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated", slog.String("driver", driver))
			}

			go monitorDBPool(monitorCtx, params.Logger.With(slog.String("driver", driver)), sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the database selected by database.driver without any lifecycle wiring.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(logger, cfg)

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db = db.Session(&gorm.Session{
			// Explicit transactions go through TransactionManager.Execute.
			SkipDefaultTransaction: true,
			Logger:                 gormLogger,
		})
		db.Config.TranslateError = true
	case config.DriverMySQL, config.DriverSQLite:
		db, err = gorm.Open(dialector(cfg.Database.Driver, cfg.Database.DSN), &gorm.Config{
			SkipDefaultTransaction: true,
			TranslateError:         true,
			Logger:                 gormLogger,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", cfg.Database.Driver)
		}
		if err := registerReplicas(db, cfg.Database); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	if err := configurePool(db, cfg.Database); err != nil {
		return nil, err
	}

	return db, nil
}

func dialector(driver, dsn string) gorm.Dialector {
	if driver == config.DriverMySQL {
		return mysql.Open(dsn)
	}

	return sqlite.Open(dsn)
}

// registerReplicas routes reads to the configured replicas. Writes and
// transactions stay on the primary.
func registerReplicas(db *gorm.DB, dbCfg config.DatabaseConfig) error {
	if len(dbCfg.Replicas) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(dbCfg.Replicas))
	for _, dsn := range dbCfg.Replicas {
		replicas = append(replicas, dialector(dbCfg.Driver, dsn))
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	if dbCfg.MaxOpenConns > 0 {
		resolver = resolver.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		resolver = resolver.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}

	return errors.Wrap(db.Use(resolver), "failed to register read replicas")
}

func configurePool(db *gorm.DB, dbCfg config.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Database pool wait detected",
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			)
		}
	}
}
