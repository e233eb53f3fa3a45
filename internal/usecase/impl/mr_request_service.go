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

// mrRequestService implements the MRRequestUsecase interface.
type mrRequestService struct {
	txManager    repository.TransactionManager
	requestRepo  repository.MRRequestRepository
	identityRepo repository.IdentityRepository
	passwordGen  service.PasswordGenerator
	templates    service.MailTemplates
	dispatcher   service.NotificationDispatcher
	events       *eventEmitter
	builder      *query.Builder
	logger       *slog.Logger
}

// MRRequestServiceParams holds dependencies for MRRequestService, injected by Fx.
type MRRequestServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RequestRepo  repository.MRRequestRepository
	IdentityRepo repository.IdentityRepository
	PasswordGen  service.PasswordGenerator
	Templates    service.MailTemplates
	Dispatcher   service.NotificationDispatcher
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMRRequestService is the constructor for mrRequestService.
func NewMRRequestService(params MRRequestServiceParams) usecase.MRRequestUsecase {
	return &mrRequestService{
		txManager:    params.TxManager,
		requestRepo:  params.RequestRepo,
		identityRepo: params.IdentityRepo,
		passwordGen:  params.PasswordGen,
		templates:    params.Templates,
		dispatcher:   params.Dispatcher,
		events:       newEventEmitter(params.Publisher, params.Metrics, params.Logger),
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *mrRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a public onboarding application. One pending request per email.
func (srv *mrRequestService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateMRRequestInput) (*entity.MRRequest, error) {
	if _, err := authorize(principal, policy.KindMRRequest, policy.OpCreate, nil); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)

	_, err := srv.identityRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrEmailAlreadyRegistered
	case !errors.Is(err, repository.ErrIdentityNotFound):
		return nil, errors.Wrap(err, "failed to check existing identity")
	}

	_, err = srv.requestRepo.FindPendingByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrPendingRequestExists
	case !errors.Is(err, repository.ErrMRRequestNotFound):
		return nil, errors.Wrap(err, "failed to check pending requests")
	}

	request := &entity.MRRequest{
		Name:            input.Name,
		Email:           email,
		Phone:           input.Phone,
		Territory:       input.Territory,
		Region:          input.Region,
		City:            input.City,
		Qualification:   input.Qualification,
		ExperienceYears: input.ExperienceYears,
		Message:         input.Message,
		Status:          entity.MRRequestPending,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, storeError(err, nil, nil, "failed to create mr request")
	}

	srv.log(ctx).Info("MR request submitted", slog.String("request_id", request.ID.String()))

	return request, nil
}

func (srv *mrRequestService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.MRRequest], error) {
	decision, err := authorize(principal, policy.KindMRRequest, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, mrRequestSpec, params)
	if err != nil {
		return nil, err
	}

	requests, total, err := srv.requestRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mr requests")
	}

	return query.NewPage(requests, criteria, total), nil
}

func (srv *mrRequestService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.MRRequest, error) {
	if _, err := authorize(principal, policy.KindMRRequest, policy.OpRead, nil); err != nil {
		return nil, err
	}

	return srv.load(ctx, id)
}

// Approve creates the MR identity and marks the request approved in one transaction,
// then mails the one-time credential.
func (srv *mrRequestService) Approve(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*usecase.ApproveMRRequestOutput, error) {
	if _, err := authorize(principal, policy.KindMRRequest, policy.OpApprove, nil); err != nil {
		return nil, err
	}

	request, err := srv.loadPending(ctx, id)
	if err != nil {
		return nil, err
	}

	oneTimePass, err := srv.passwordGen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate one-time password")
	}

	identity := &entity.Identity{
		Name:               request.Name,
		Email:              request.Email,
		Phone:              request.Phone,
		Role:               entity.RoleMR,
		IsActive:           true,
		Territory:          request.Territory,
		Region:             request.Region,
		City:               request.City,
		MustChangePassword: true,
	}
	identity.SetPassword(oneTimePass)

	reviewer := principal.ID
	request.Status = entity.MRRequestApproved
	request.ProcessedBy = &reviewer

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := createIdentity(ctx, repoFactory, identity); err != nil {
			return err
		}
		request.CreatedUserID = &identity.ID

		return repoFactory.NewMRRequestRepository().MarkProcessed(ctx, request)
	})
	if err != nil {
		return nil, processError(err)
	}

	srv.log(ctx).Info("MR request approved",
		slog.String("request_id", request.ID.String()),
		slog.String("identity_id", identity.ID.String()),
		slog.String("employee_id", identity.EmployeeID),
	)

	mail, err := srv.templates.Welcome(service.WelcomeMailData{
		Name:        identity.Name,
		Email:       identity.Email,
		EmployeeID:  identity.EmployeeID,
		OneTimePass: oneTimePass,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render welcome mail", slog.Any("error", err))
	} else {
		srv.dispatcher.Dispatch(ctx, mail)
	}

	srv.emitProcessed(ctx, service.EventMRRequestApproved, request)

	return &usecase.ApproveMRRequestOutput{Request: request, Identity: identity}, nil
}

// Reject closes the request and mails the applicant.
func (srv *mrRequestService) Reject(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.RejectMRRequestInput) (*entity.MRRequest, error) {
	if _, err := authorize(principal, policy.KindMRRequest, policy.OpReject, nil); err != nil {
		return nil, err
	}

	request, err := srv.loadPending(ctx, id)
	if err != nil {
		return nil, err
	}

	reviewer := principal.ID
	request.Status = entity.MRRequestRejected
	request.ProcessedBy = &reviewer
	if input != nil {
		request.RejectionReason = input.Reason
	}

	if err := srv.requestRepo.MarkProcessed(ctx, request); err != nil {
		return nil, processError(err)
	}

	srv.log(ctx).Info("MR request rejected", slog.String("request_id", request.ID.String()))

	mail, err := srv.templates.Rejection(service.RejectionMailData{
		Name:   request.Name,
		Email:  request.Email,
		Reason: request.RejectionReason,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render rejection mail", slog.Any("error", err))
	} else {
		srv.dispatcher.Dispatch(ctx, mail)
	}

	srv.emitProcessed(ctx, service.EventMRRequestRejected, request)

	return request, nil
}

func (srv *mrRequestService) emitProcessed(ctx context.Context, eventType service.EventType, request *entity.MRRequest) {
	event := &service.WorkflowEvent{
		Type:       eventType,
		ResourceID: request.ID.String(),
		Status:     string(request.Status),
	}
	if request.ProcessedBy != nil {
		event.ActorID = request.ProcessedBy.String()
	}
	if request.ProcessedAt != nil {
		event.OccurredAt = *request.ProcessedAt
	}
	if request.CreatedUserID != nil {
		event.OwnerID = request.CreatedUserID.String()
	}

	srv.events.emit(ctx, event)
}

// processError maps a lost compare-and-swap on the request status.
func processError(err error) error {
	if errors.Is(err, repository.ErrAlreadyProcessed) {
		return domainerrors.ErrAlreadyProcessed
	}

	return storeError(err, repository.ErrMRRequestNotFound, domainerrors.ErrMRRequestNotFound, "failed to process mr request")
}

func (srv *mrRequestService) loadPending(ctx context.Context, id uuid.UUID) (*entity.MRRequest, error) {
	request, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.MRRequestPending {
		return nil, domainerrors.ErrAlreadyProcessed
	}

	return request, nil
}

func (srv *mrRequestService) load(ctx context.Context, id uuid.UUID) (*entity.MRRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrMRRequestNotFound, domainerrors.ErrMRRequestNotFound, "failed to load mr request")
	}

	return request, nil
}
