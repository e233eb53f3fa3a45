package impl

import (
	"context"
	"log/slog"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	"medrep/internal/domain/policy"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ProductActivityRepository
	productRepo  repository.ProductRepository
	doctorRepo   repository.DoctorRepository
	identityRepo repository.IdentityRepository
	builder      *query.Builder
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ProductActivityRepository
	ProductRepo  repository.ProductRepository
	DoctorRepo   repository.DoctorRepository
	IdentityRepo repository.IdentityRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		productRepo:  params.ProductRepo,
		doctorRepo:   params.DoctorRepo,
		identityRepo: params.IdentityRepo,
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *activityService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.ProductActivityLog], error) {
	decision, err := authorize(principal, policy.KindProductActivity, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, activitySpec, params)
	if err != nil {
		return nil, err
	}

	logs, total, err := srv.activityRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product activity")
	}

	return query.NewPage(logs, criteria, total), nil
}

// Create appends an activity event owned by the caller.
func (srv *activityService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateActivityInput) (*entity.ProductActivityLog, error) {
	decision, err := authorize(principal, policy.KindProductActivity, policy.OpCreate, nil)
	if err != nil {
		return nil, err
	}

	owner, err := resolveOwner(ctx, srv.identityRepo, principal, decision, input.MRID)
	if err != nil {
		return nil, err
	}
	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, referenceError(err, repository.ErrProductNotFound, "product")
	}
	if input.DoctorID != nil {
		if _, err := loadReportableDoctor(ctx, srv.doctorRepo, principal, *input.DoctorID); err != nil {
			return nil, err
		}
	}

	occurredAt := utcNow()
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	activity := &entity.ProductActivityLog{
		MRID:       owner,
		ProductID:  input.ProductID,
		DoctorID:   input.DoctorID,
		Action:     input.Action,
		Quantity:   input.Quantity,
		Notes:      input.Notes,
		OccurredAt: occurredAt,
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, storeError(err, nil, nil, "failed to record product activity")
	}

	srv.log(ctx).Debug("Product activity recorded",
		slog.String("mr_id", owner.String()),
		slog.String("action", string(activity.Action)),
	)

	return activity, nil
}

// Summary aggregates activity by product and action within the caller's scope.
func (srv *activityService) Summary(ctx context.Context, principal *entity.Principal, params query.Params) ([]entity.ActivitySummary, error) {
	decision, err := authorize(principal, policy.KindProductActivity, policy.OpAggregate, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, activitySpec, params)
	if err != nil {
		return nil, err
	}

	summary, err := srv.activityRepo.Summarize(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize product activity")
	}

	return summary, nil
}
