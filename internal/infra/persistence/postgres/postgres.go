package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"medrep/config"
	"medrep/internal/domain/lifecycle"
	"medrep/internal/errors"
	"medrep/internal/infra/metrics"
	"medrep/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolWatchInterval = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary and replica pool, migrates the schema when asked and
// exposes pool statistics. The returned handle skips GORM's implicit per-statement
// transactions; multi-step writes go through the transaction manager.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	db := configure(conn, params.Config, params.Logger, params.Metrics)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB, "primary"); err != nil {
			params.Logger.Warn("Database pool metrics unavailable", slog.Any("error", err))
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.AutoMigrate {
				if err := model.Migrate(db.WithContext(ctx)); err != nil {
					return errors.Wrap(err, "failed to migrate schema")
				}
				params.Logger.InfoContext(ctx, "Database schema migrated", slog.Int("tables", len(model.All())))
			}

			go newPoolWatcher(params.Logger, sqlDB, params.Config.SlowQueryThreshold).run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// configure applies the session settings every medrep connection shares.
func configure(db *gorm.DB, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *gorm.DB {
	// Unique and foreign-key violations surface as gorm.ErrDuplicatedKey / ErrForeignKeyViolated.
	db.Config.TranslateError = true

	return db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg, m),
	})
}

// poolWatcher warns when requests queue for a connection longer than the slow threshold on average.
type poolWatcher struct {
	logger    *slog.Logger
	db        *sql.DB
	threshold time.Duration
	last      sql.DBStats
}

func newPoolWatcher(logger *slog.Logger, db *sql.DB, threshold time.Duration) *poolWatcher {
	return &poolWatcher{
		logger:    logger,
		db:        db,
		threshold: threshold,
		last:      db.Stats(),
	}
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *poolWatcher) check(ctx context.Context) {
	cur := w.db.Stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	avg := waited / time.Duration(waits)
	if avg >= w.threshold {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("avg_wait", avg),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
