package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"examhub/config"
	"examhub/internal/domain/lifecycle"
	"examhub/internal/errors"
	"examhub/internal/infra/metrics"
	"examhub/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the exam database. On start it pings the server, applies pending
// migrations when enabled and starts watching the connection pool.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDB(sqlDB, "examhub"); err != nil {
			return nil, errors.Wrap(err, "failed to register postgres pool metrics")
		}
	}

	watcher := newPoolWatcher(params.Logger, sqlDB)
	watchCtx, stopWatching := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}

			if err := autoMigrate(ctx, params.Config.Migration, sqlDB, params.Logger); err != nil {
				return err
			}

			go watcher.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatching()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func autoMigrate(ctx context.Context, cfg *config.MigrationConfig, sqlDB *sql.DB, logger *slog.Logger) error {
	if cfg == nil || !cfg.AutoMigrate {
		return nil
	}

	applied, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	logger.Info("Schema migrations applied", slog.Int("count", applied))

	return nil
}
