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
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type targetService struct {
	targetRepo   repository.MRTargetRepository
	identityRepo repository.IdentityRepository
	builder      *query.Builder
	logger       *slog.Logger
}

// TargetServiceParams holds dependencies for TargetService, injected by Fx.
type TargetServiceParams struct {
	fx.In

	TargetRepo   repository.MRTargetRepository
	IdentityRepo repository.IdentityRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTargetService is the constructor for targetService.
func NewTargetService(params TargetServiceParams) usecase.TargetUsecase {
	return &targetService{
		targetRepo:   params.TargetRepo,
		identityRepo: params.IdentityRepo,
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *targetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *targetService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.MRTarget], error) {
	decision, err := authorize(principal, policy.KindMRTarget, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, targetSpec, params)
	if err != nil {
		return nil, err
	}

	targets, total, err := srv.targetRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list targets")
	}

	return query.NewPage(targets, criteria, total), nil
}

func (srv *targetService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.MRTarget, error) {
	target, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindMRTarget, policy.OpRead, policy.OwnedBy(target.MRID, "")); err != nil {
		return nil, err
	}

	return target, nil
}

func (srv *targetService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateTargetInput) (*entity.MRTarget, error) {
	if _, err := authorize(principal, policy.KindMRTarget, policy.OpCreate, nil); err != nil {
		return nil, err
	}

	if _, err := srv.identityRepo.FindByID(ctx, input.MRID); err != nil {
		return nil, referenceError(err, repository.ErrIdentityNotFound, "mr")
	}

	target := &entity.MRTarget{
		MRID:            input.MRID,
		Month:           input.Month,
		Year:            input.Year,
		VisitTarget:     input.VisitTarget,
		OrderTarget:     input.OrderTarget,
		SalesTarget:     input.SalesTarget,
		NewDoctorTarget: input.NewDoctorTarget,
		Notes:           input.Notes,
		CreatedBy:       principal.ID,
	}

	if err := srv.targetRepo.Create(ctx, target); err != nil {
		return nil, storeError(err, nil, nil, "failed to create target")
	}

	srv.log(ctx).Info("Target created",
		slog.String("mr_id", target.MRID.String()),
		slog.Int("month", target.Month),
		slog.Int("year", target.Year),
	)

	return target, nil
}

func (srv *targetService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateTargetInput) (*entity.MRTarget, error) {
	if _, err := authorize(principal, policy.KindMRTarget, policy.OpUpdate, nil); err != nil {
		return nil, err
	}

	target, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	setIf(&target.VisitTarget, input.VisitTarget)
	setIf(&target.OrderTarget, input.OrderTarget)
	setIf(&target.SalesTarget, input.SalesTarget)
	setIf(&target.NewDoctorTarget, input.NewDoctorTarget)
	setIf(&target.Notes, input.Notes)

	if err := srv.targetRepo.Update(ctx, target); err != nil {
		return nil, storeError(err, repository.ErrTargetNotFound, domainerrors.ErrTargetNotFound, "failed to update target")
	}

	return target, nil
}

func (srv *targetService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if _, err := authorize(principal, policy.KindMRTarget, policy.OpDelete, nil); err != nil {
		return err
	}

	if err := srv.targetRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrTargetNotFound, domainerrors.ErrTargetNotFound, "failed to delete target")
	}

	return nil
}

func (srv *targetService) load(ctx context.Context, id uuid.UUID) (*entity.MRTarget, error) {
	target, err := srv.targetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrTargetNotFound, domainerrors.ErrTargetNotFound, "failed to load target")
	}

	return target, nil
}
