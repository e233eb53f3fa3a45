package impl

import (
	"context"
	"log/slog"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/policy"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/infra/metrics"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type performanceService struct {
	txManager    repository.TransactionManager
	perfRepo     repository.MRPerformanceRepository
	targetRepo   repository.MRTargetRepository
	visitRepo    repository.VisitReportRepository
	orderRepo    repository.OrderRepository
	identityRepo repository.IdentityRepository
	metrics      *metrics.Metrics
	builder      *query.Builder
	logger       *slog.Logger
}

// PerformanceServiceParams holds dependencies for PerformanceService, injected by Fx.
type PerformanceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PerfRepo     repository.MRPerformanceRepository
	TargetRepo   repository.MRTargetRepository
	VisitRepo    repository.VisitReportRepository
	OrderRepo    repository.OrderRepository
	IdentityRepo repository.IdentityRepository
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPerformanceService is the constructor for performanceService.
func NewPerformanceService(params PerformanceServiceParams) usecase.PerformanceUsecase {
	return &performanceService{
		txManager:    params.TxManager,
		perfRepo:     params.PerfRepo,
		targetRepo:   params.TargetRepo,
		visitRepo:    params.VisitRepo,
		orderRepo:    params.OrderRepo,
		identityRepo: params.IdentityRepo,
		metrics:      params.Metrics,
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *performanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *performanceService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.MRPerformanceLog], error) {
	decision, err := authorize(principal, policy.KindMRPerformance, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, performanceSpec, params)
	if err != nil {
		return nil, err
	}

	logs, total, err := srv.perfRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list performance logs")
	}

	return query.NewPage(logs, criteria, total), nil
}

func (srv *performanceService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.MRPerformanceLog, error) {
	perf, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindMRPerformance, policy.OpRead, policy.OwnedBy(perf.MRID, "")); err != nil {
		return nil, err
	}

	return perf, nil
}

// Create stores a hand-entered log. Without an explicit achievement it is derived from the period target.
func (srv *performanceService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreatePerformanceInput) (*entity.MRPerformanceLog, error) {
	if _, err := authorize(principal, policy.KindMRPerformance, policy.OpCreate, nil); err != nil {
		return nil, err
	}

	if _, err := srv.identityRepo.FindByID(ctx, input.MRID); err != nil {
		return nil, referenceError(err, repository.ErrIdentityNotFound, "mr")
	}

	perf := &entity.MRPerformanceLog{
		MRID:            input.MRID,
		Month:           input.Month,
		Year:            input.Year,
		VisitsCompleted: input.VisitsCompleted,
		OrdersPlaced:    input.OrdersPlaced,
		SalesValue:      input.SalesValue,
		DoctorsCovered:  input.DoctorsCovered,
		Remarks:         input.Remarks,
		ComputedAt:      utcNow(),
	}

	if input.AchievementPercent != nil {
		perf.AchievementPercent = *input.AchievementPercent
	} else if err := srv.applyPeriodTarget(ctx, perf); err != nil {
		return nil, err
	}

	if err := srv.perfRepo.Create(ctx, perf); err != nil {
		return nil, storeError(err, nil, nil, "failed to create performance log")
	}

	return perf, nil
}

func (srv *performanceService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdatePerformanceInput) (*entity.MRPerformanceLog, error) {
	if _, err := authorize(principal, policy.KindMRPerformance, policy.OpUpdate, nil); err != nil {
		return nil, err
	}

	perf, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	setIf(&perf.VisitsCompleted, input.VisitsCompleted)
	setIf(&perf.OrdersPlaced, input.OrdersPlaced)
	setIf(&perf.DoctorsCovered, input.DoctorsCovered)
	setIf(&perf.Remarks, input.Remarks)

	switch {
	case input.AchievementPercent != nil:
		perf.AchievementPercent = *input.AchievementPercent
		setIf(&perf.SalesValue, input.SalesValue)
	case input.SalesValue != nil:
		perf.SalesValue = *input.SalesValue
		if err := srv.applyPeriodTarget(ctx, perf); err != nil {
			return nil, err
		}
	}

	if err := srv.perfRepo.Update(ctx, perf); err != nil {
		return nil, storeError(err, repository.ErrPerformanceNotFound, domainerrors.ErrPerformanceNotFound, "failed to update performance log")
	}

	return perf, nil
}

func (srv *performanceService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if _, err := authorize(principal, policy.KindMRPerformance, policy.OpDelete, nil); err != nil {
		return err
	}

	if err := srv.perfRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrPerformanceNotFound, domainerrors.ErrPerformanceNotFound, "failed to delete performance log")
	}

	return nil
}

// Rollup computes every active MR's figures for the month from visits and orders and upserts the logs.
func (srv *performanceService) Rollup(ctx context.Context, principal *entity.Principal, input *usecase.RollupInput) (*usecase.RollupOutput, error) {
	if principal != nil {
		if _, err := authorize(principal, policy.KindMRPerformance, policy.OpTransition, nil); err != nil {
			return nil, err
		}
	}

	period := entity.Period{Month: input.Month, Year: input.Year}
	if !period.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "month", Message: "month and year do not name a valid period"})
	}

	logs, err := srv.rollup(ctx, period)
	if err != nil {
		srv.countRollup(metrics.OutcomeFailed, 0)

		return nil, err
	}
	srv.countRollup(metrics.OutcomeSucceeded, len(logs))

	srv.log(ctx).Info("Performance rollup finished",
		slog.Int("month", period.Month),
		slog.Int("year", period.Year),
		slog.Int("logs", len(logs)),
	)

	return &usecase.RollupOutput{Period: period, Logs: logs}, nil
}

func (srv *performanceService) rollup(ctx context.Context, period entity.Period) ([]*entity.MRPerformanceLog, error) {
	from, to := period.Bounds()

	mrs, err := srv.identityRepo.ListActiveByRole(ctx, entity.RoleMR)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active MRs")
	}

	visitStats, err := srv.visitRepo.StatsBetween(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate visits")
	}
	orderStats, err := srv.orderRepo.StatsBetween(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}
	targets, err := srv.targetRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load targets")
	}

	visitsByMR := make(map[uuid.UUID]repository.VisitStat, len(visitStats))
	for _, s := range visitStats {
		visitsByMR[s.MRID] = s
	}
	ordersByMR := make(map[uuid.UUID]repository.OrderStat, len(orderStats))
	for _, s := range orderStats {
		ordersByMR[s.MRID] = s
	}
	targetsByMR := make(map[uuid.UUID]*entity.MRTarget, len(targets))
	for _, t := range targets {
		targetsByMR[t.MRID] = t
	}

	now := utcNow()
	logs := make([]*entity.MRPerformanceLog, 0, len(mrs))
	for _, mr := range mrs {
		visits := visitsByMR[mr.ID]
		orders := ordersByMR[mr.ID]
		perf := &entity.MRPerformanceLog{
			MRID:            mr.ID,
			Month:           period.Month,
			Year:            period.Year,
			VisitsCompleted: int(visits.Visits),
			DoctorsCovered:  int(visits.DoctorsCovered),
			OrdersPlaced:    int(orders.Orders),
			SalesValue:      orders.Sales,
			ComputedAt:      now,
		}
		perf.ApplyTarget(targetsByMR[mr.ID])
		logs = append(logs, perf)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewMRPerformanceRepository()
		for _, perf := range logs {
			if err := repo.Upsert(ctx, perf); err != nil {
				return errors.Wrapf(err, "failed to upsert performance log for %s", perf.MRID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (srv *performanceService) countRollup(outcome string, upserted int) {
	if srv.metrics == nil {
		return
	}

	srv.metrics.RollupRunsTotal.WithLabelValues(outcome).Inc()
	srv.metrics.RollupLogsUpserted.Add(float64(upserted))
}

func (srv *performanceService) applyPeriodTarget(ctx context.Context, perf *entity.MRPerformanceLog) error {
	target, err := srv.targetRepo.FindByPeriod(ctx, perf.MRID, entity.Period{Month: perf.Month, Year: perf.Year})
	switch {
	case errors.Is(err, repository.ErrTargetNotFound):
		target = nil
	case err != nil:
		return errors.Wrap(err, "failed to load period target")
	}
	perf.ApplyTarget(target)

	return nil
}

func (srv *performanceService) load(ctx context.Context, id uuid.UUID) (*entity.MRPerformanceLog, error) {
	perf, err := srv.perfRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrPerformanceNotFound, domainerrors.ErrPerformanceNotFound, "failed to load performance log")
	}

	return perf, nil
}
