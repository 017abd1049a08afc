package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"lodging/config"
	"lodging/internal/domain/lifecycle"
	"lodging/internal/errors"
	"lodging/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
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

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Migrations != nil && params.Config.Migrations.AutoRun {
				if err := runMigrations(startCtx, db, params.Logger); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func runMigrations(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.MigrationTimeout)
	defer cancel()

	migrator, err := migrations.New(ctx, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", err))
		}
	}()

	return migrator.Up()
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
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

// logPoolWait reports connection pool contention observed between two samples.
func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
	} else {
		logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
	}
}
