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
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitService implements the VisitUsecase interface.
// reviewRoutesHint is reported when a status change belongs to the review endpoints.
const reviewRoutesHint = "Visit reports are reviewed through POST /api/visits/:id/approve or POST /api/visits/:id/reject"

type visitService struct {
	txManager    repository.TransactionManager
	visitRepo    repository.VisitReportRepository
	doctorRepo   repository.DoctorRepository
	identityRepo repository.IdentityRepository
	events       *eventEmitter
	builder      *query.Builder
	logger       *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VisitRepo    repository.VisitReportRepository
	DoctorRepo   repository.DoctorRepository
	IdentityRepo repository.IdentityRepository
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager:    params.TxManager,
		visitRepo:    params.VisitRepo,
		doctorRepo:   params.DoctorRepo,
		identityRepo: params.IdentityRepo,
		events:       newEventEmitter(params.Publisher, params.Metrics, params.Logger),
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func visitTarget(visit *entity.VisitReport) *policy.Target {
	return policy.OwnedBy(visit.MRID, string(visit.Status))
}

func (srv *visitService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.VisitReport], error) {
	decision, err := authorize(principal, policy.KindVisitReport, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, visitSpec, params)
	if err != nil {
		return nil, err
	}

	visits, total, err := srv.visitRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visit reports")
	}

	return query.NewPage(visits, criteria, total), nil
}

func (srv *visitService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.VisitReport, error) {
	visit, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindVisitReport, policy.OpRead, visitTarget(visit)); err != nil {
		return nil, err
	}

	return visit, nil
}

// Create records a visit owned by the caller, or by the chosen MR for admins.
func (srv *visitService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateVisitInput) (*entity.VisitReport, error) {
	decision, err := authorize(principal, policy.KindVisitReport, policy.OpCreate, nil)
	if err != nil {
		return nil, err
	}
	stripRestricted(ctx, srv.log(ctx), principal, input)

	status := entity.VisitStatusDraft
	if input.Status != nil {
		if !input.Status.IsValid() || input.Status.IsTerminal() {
			return nil, domainerrors.ErrInvalidTransition.WithDetails(reviewRoutesHint)
		}
		status = *input.Status
	}

	owner, err := resolveOwner(ctx, srv.identityRepo, principal, decision, input.MRID)
	if err != nil {
		return nil, err
	}
	if _, err := loadReportableDoctor(ctx, srv.doctorRepo, principal, input.DoctorID); err != nil {
		return nil, err
	}

	visit := &entity.VisitReport{
		MRID:              owner,
		DoctorID:          input.DoctorID,
		VisitDate:         input.VisitDate.UTC(),
		Purpose:           input.Purpose,
		ProductsDiscussed: dedupe(input.ProductsDiscussed),
		SamplesGiven:      input.SamplesGiven,
		Notes:             input.Notes,
		Feedback:          input.Feedback,
		FollowUpDate:      input.FollowUpDate,
		Location:          input.Location,
		Status:            status,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		next, err := repoFactory.NewSequenceRepository().Next(ctx, entity.SequenceVisit)
		if err != nil {
			return errors.Wrap(err, "failed to issue visit id")
		}
		visit.VisitID = entity.FormatBusinessID(entity.SequenceVisit, next)

		return repoFactory.NewVisitReportRepository().Create(ctx, visit)
	})
	if err != nil {
		return nil, storeError(err, nil, nil, "failed to create visit report")
	}

	srv.log(ctx).Info("Visit report created", slog.String("visit_id", visit.VisitID), slog.String("mr_id", owner.String()))

	return visit, nil
}

// Update edits a report. Owners may only edit Draft or Submitted reports.
func (srv *visitService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateVisitInput) (*entity.VisitReport, error) {
	visit, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindVisitReport, policy.OpUpdate, visitTarget(visit)); err != nil {
		return nil, err
	}
	stripRestricted(ctx, srv.log(ctx), principal, input)

	expected := visit.Status
	if input.Status != nil && *input.Status != visit.Status {
		if !input.Status.IsValid() || input.Status.IsTerminal() || visit.Status.IsTerminal() {
			return nil, domainerrors.ErrInvalidTransition.WithDetails(reviewRoutesHint)
		}
		visit.Status = *input.Status
	}

	if input.DoctorID != nil && *input.DoctorID != visit.DoctorID {
		if _, err := loadReportableDoctor(ctx, srv.doctorRepo, principal, *input.DoctorID); err != nil {
			return nil, err
		}
		visit.DoctorID = *input.DoctorID
	}
	if input.VisitDate != nil {
		visit.VisitDate = input.VisitDate.UTC()
	}
	if input.ProductsDiscussed != nil {
		visit.ProductsDiscussed = dedupe(*input.ProductsDiscussed)
	}
	if input.FollowUpDate != nil {
		visit.FollowUpDate = input.FollowUpDate
	}
	setIf(&visit.Purpose, input.Purpose)
	setIf(&visit.SamplesGiven, input.SamplesGiven)
	setIf(&visit.Notes, input.Notes)
	setIf(&visit.Feedback, input.Feedback)
	setIf(&visit.Location, input.Location)

	if err := srv.visitRepo.Update(ctx, visit, expected); err != nil {
		return nil, staleError(err, repository.ErrVisitNotFound, domainerrors.ErrVisitNotFound, "failed to update visit report")
	}

	return visit, nil
}

func (srv *visitService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	visit, err := srv.load(ctx, id)
	if err != nil {
		return err
	}

	if _, err := authorize(principal, policy.KindVisitReport, policy.OpDelete, visitTarget(visit)); err != nil {
		return err
	}

	if err := srv.visitRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrVisitNotFound, domainerrors.ErrVisitNotFound, "failed to delete visit report")
	}

	srv.log(ctx).Info("Visit report deleted", slog.String("visit_id", visit.VisitID))

	return nil
}

// Approve marks a pending report approved.
func (srv *visitService) Approve(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.VisitReport, error) {
	return srv.review(ctx, principal, id, policy.OpApprove, entity.VisitStatusApproved, "")
}

// Reject marks a pending report rejected with an optional reason.
func (srv *visitService) Reject(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.ReviewVisitInput) (*entity.VisitReport, error) {
	var reason string
	if input != nil {
		reason = input.Reason
	}

	return srv.review(ctx, principal, id, policy.OpReject, entity.VisitStatusRejected, reason)
}

func (srv *visitService) review(
	ctx context.Context,
	principal *entity.Principal,
	id uuid.UUID,
	op policy.Operation,
	to entity.VisitStatus,
	reason string,
) (*entity.VisitReport, error) {
	if _, err := authorize(principal, policy.KindVisitReport, op, nil); err != nil {
		return nil, err
	}

	visit, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if visit.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("Visit report is already " + string(visit.Status))
	}

	expected := visit.Status
	now := utcNow()
	reviewer := principal.ID
	visit.Status = to
	visit.ApprovedBy = &reviewer
	visit.ApprovedAt = &now
	visit.RejectionReason = reason

	if err := srv.visitRepo.Update(ctx, visit, expected); err != nil {
		return nil, staleError(err, repository.ErrVisitNotFound, domainerrors.ErrVisitNotFound, "failed to review visit report")
	}

	srv.log(ctx).Info("Visit report reviewed", slog.String("visit_id", visit.VisitID), slog.String("status", string(to)))

	eventType := service.EventVisitApproved
	if to == entity.VisitStatusRejected {
		eventType = service.EventVisitRejected
	}
	attributes := map[string]string{"visit_id": visit.VisitID}
	if reason != "" {
		attributes["reason"] = reason
	}
	srv.events.emit(ctx, &service.WorkflowEvent{
		Type:       eventType,
		ResourceID: visit.ID.String(),
		ActorID:    principal.ID.String(),
		OwnerID:    visit.MRID.String(),
		Status:     string(to),
		OccurredAt: now,
		Attributes: attributes,
	})

	return visit, nil
}

func (srv *visitService) load(ctx context.Context, id uuid.UUID) (*entity.VisitReport, error) {
	visit, err := srv.visitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrVisitNotFound, domainerrors.ErrVisitNotFound, "failed to load visit report")
	}

	return visit, nil
}
