package impl

import (
	"context"
	"log/slog"

	"medrep/internal/domain/entity"
	"medrep/internal/domain/policy"
	"medrep/internal/domain/repository"
	"medrep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	identityRepo repository.IdentityRepository
	doctorRepo   repository.DoctorRepository
	productRepo  repository.ProductRepository
	visitRepo    repository.VisitReportRepository
	orderRepo    repository.OrderRepository
	targetRepo   repository.MRTargetRepository
	perfRepo     repository.MRPerformanceRepository
	requestRepo  repository.MRRequestRepository
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	DoctorRepo   repository.DoctorRepository
	ProductRepo  repository.ProductRepository
	VisitRepo    repository.VisitReportRepository
	OrderRepo    repository.OrderRepository
	TargetRepo   repository.MRTargetRepository
	PerfRepo     repository.MRPerformanceRepository
	RequestRepo  repository.MRRequestRepository
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		identityRepo: params.IdentityRepo,
		doctorRepo:   params.DoctorRepo,
		productRepo:  params.ProductRepo,
		visitRepo:    params.VisitRepo,
		orderRepo:    params.OrderRepo,
		targetRepo:   params.TargetRepo,
		perfRepo:     params.PerfRepo,
		requestRepo:  params.RequestRepo,
		logger:       params.Logger,
	}
}

func (srv *dashboardService) Admin(ctx context.Context, principal *entity.Principal) (*entity.AdminDashboard, error) {
	if _, err := authorize(principal, policy.KindDashboard, policy.OpOverview, nil); err != nil {
		return nil, err
	}

	var (
		board entity.AdminDashboard
		err   error
	)

	if board.ActiveMRs, err = srv.identityRepo.CountActiveByRole(ctx, entity.RoleMR); err != nil {
		return nil, errors.Wrap(err, "failed to count MRs")
	}
	if board.ActiveDoctors, err = srv.doctorRepo.CountActive(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to count doctors")
	}
	if board.ActiveProducts, err = srv.productRepo.CountActive(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if board.PendingMRRequests, err = srv.requestRepo.CountPending(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count mr requests")
	}
	if board.VisitsByStatus, err = srv.visitRepo.CountByStatus(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to group visits")
	}
	if board.OrdersByStatus, err = srv.orderRepo.CountByStatus(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to group orders")
	}
	board.Revenue = revenue(board.OrdersByStatus)

	return &board, nil
}

// MR summarises the caller's own activity and the current month's target and performance.
func (srv *dashboardService) MR(ctx context.Context, principal *entity.Principal) (*entity.MRDashboard, error) {
	decision, err := authorize(principal, policy.KindDashboard, policy.OpAggregate, nil)
	if err != nil {
		return nil, err
	}

	self := principal.ID
	if decision.Scope.Restricted {
		self = decision.Scope.OwnerID
	}

	board := entity.MRDashboard{Period: entity.PeriodOf(utcNow())}

	if board.AssignedDoctors, err = srv.doctorRepo.CountActive(ctx, &self); err != nil {
		return nil, errors.Wrap(err, "failed to count assigned doctors")
	}
	if board.VisitsByStatus, err = srv.visitRepo.CountByStatus(ctx, &self); err != nil {
		return nil, errors.Wrap(err, "failed to group visits")
	}
	if board.OrdersByStatus, err = srv.orderRepo.CountByStatus(ctx, &self); err != nil {
		return nil, errors.Wrap(err, "failed to group orders")
	}
	board.Revenue = revenue(board.OrdersByStatus)

	target, err := srv.targetRepo.FindByPeriod(ctx, self, board.Period)
	switch {
	case err == nil:
		board.Target = target
	case !errors.Is(err, repository.ErrTargetNotFound):
		return nil, errors.Wrap(err, "failed to load current target")
	}

	perf, err := srv.perfRepo.FindByPeriod(ctx, self, board.Period)
	switch {
	case err == nil:
		board.Performance = perf
	case !errors.Is(err, repository.ErrPerformanceNotFound):
		return nil, errors.Wrap(err, "failed to load current performance")
	}

	return &board, nil
}

// revenue sums the grand totals of orders that were not cancelled or returned.
func revenue(counts []entity.StatusCount) float64 {
	var total float64
	for _, c := range counts {
		if entity.OrderStatus(c.Status).IsTerminal() {
			continue
		}
		total += c.Value
	}

	return total
}
