// Package scheduler runs the periodic jobs of the service on robfig/cron.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"medrep/config"
	"medrep/internal/delivery"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	"medrep/internal/domain/lifecycle"
	"medrep/internal/errors"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// rollupTimeout bounds one scheduled rollup run.
const rollupTimeout = 10 * time.Minute

type scheduler struct {
	cron          *cron.Cron
	logger        *slog.Logger
	performanceUC usecase.PerformanceUsecase
	now           func() time.Time
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	PerformanceUC usecase.PerformanceUsecase
}

// NewScheduler registers the jobs. A disabled scheduler serves nothing.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	cronLog := &slogAdapter{logger: params.Logger}
	s := &scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger:        params.Logger,
		performanceUC: params.PerformanceUC,
		now:           time.Now,
	}

	cfg := params.Cfg.Scheduler
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Scheduler disabled")

		return s, nil
	}

	if _, err := s.cron.AddFunc(cfg.PerformanceRollupSpec, s.rollupPreviousMonth); err != nil {
		return nil, errors.Wrapf(err, "invalid performance rollup schedule %q", cfg.PerformanceRollupSpec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop in the background and returns.
func (s *scheduler) Serve(_ context.Context) error {
	if len(s.cron.Entries()) == 0 {
		return nil
	}

	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		s.logger.Warn("Scheduler stopped before running jobs finished")

		return nil
	}
}

// rollupPreviousMonth computes last month's performance logs as the system, with no principal.
func (s *scheduler) rollupPreviousMonth() {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("job", "performance_rollup"))

	ctx := deliverycontext.WithRequestID(context.Background(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)
	ctx, cancel := context.WithTimeout(ctx, rollupTimeout)
	defer cancel()

	period := entity.PeriodOf(s.now()).Previous()
	logger.Info("Starting scheduled performance rollup", slog.Int("month", period.Month), slog.Int("year", period.Year))

	output, err := s.performanceUC.Rollup(ctx, nil, &usecase.RollupInput{Month: period.Month, Year: period.Year})
	if err != nil {
		logger.Error("Scheduled performance rollup failed", slog.Any("error", err))

		return
	}

	logger.Info("Scheduled performance rollup completed", slog.Int("logs", len(output.Logs)))
}

// slogAdapter satisfies cron.Logger.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Debug("cron: "+msg, keysAndValues...)
}

func (a *slogAdapter) Error(err error, msg string, keysAndValues ...any) {
	a.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
