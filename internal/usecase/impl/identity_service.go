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

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	builder      *query.Builder
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		identityRepo: params.IdentityRepo,
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *identityService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Identity], error) {
	decision, err := authorize(principal, policy.KindIdentity, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, identitySpec, params)
	if err != nil {
		return nil, err
	}

	identities, total, err := srv.identityRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list identities")
	}

	return query.NewPage(identities, criteria, total), nil
}

func (srv *identityService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindIdentity, policy.OpRead, policy.OwnedBy(identity.ID, "")); err != nil {
		return nil, err
	}

	return identity, nil
}

// Create provisions an account. The employee id is drawn from the sequence in the same transaction.
func (srv *identityService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateIdentityInput) (*entity.Identity, error) {
	if _, err := authorize(principal, policy.KindIdentity, policy.OpCreate, nil); err != nil {
		return nil, err
	}

	role, ok := entity.ParseRole(string(input.Role))
	if !ok {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "role", Message: "must be one of Admin, MR, Manager"})
	}

	identity := &entity.Identity{
		Name:               input.Name,
		Email:              entity.NormalizeEmail(input.Email),
		Phone:              input.Phone,
		Role:               role,
		IsActive:           true,
		Territory:          input.Territory,
		Region:             input.Region,
		City:               input.City,
		ReportingManagerID: input.ReportingManagerID,
	}
	identity.SetPassword(input.Password)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createIdentity(ctx, repoFactory, identity)
	})
	if err != nil {
		return nil, storeError(err, nil, nil, "failed to create identity")
	}

	srv.log(ctx).Info("Identity created",
		slog.String("identity_id", identity.ID.String()),
		slog.String("employee_id", identity.EmployeeID),
		slog.String("role", identity.Role.String()),
	)

	return identity, nil
}

// createIdentity assigns the next employee id and stores the identity inside an open transaction.
func createIdentity(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity) error {
	next, err := repoFactory.NewSequenceRepository().Next(ctx, entity.SequenceEmployee)
	if err != nil {
		return errors.Wrap(err, "failed to issue employee id")
	}
	identity.EmployeeID = entity.FormatBusinessID(entity.SequenceEmployee, next)

	return repoFactory.NewIdentityRepository().Create(ctx, identity)
}

func (srv *identityService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateIdentityInput) (*entity.Identity, error) {
	identity, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindIdentity, policy.OpUpdate, policy.OwnedBy(identity.ID, "")); err != nil {
		return nil, err
	}
	stripRestricted(ctx, srv.log(ctx), principal, input)

	if err := applyIdentityUpdate(identity, input); err != nil {
		return nil, err
	}

	if err := srv.identityRepo.Update(ctx, identity); err != nil {
		return nil, storeError(err, repository.ErrIdentityNotFound, domainerrors.ErrUserNotFound, "failed to update identity")
	}

	return identity, nil
}

func applyIdentityUpdate(identity *entity.Identity, input *usecase.UpdateIdentityInput) error {
	if input.Name != nil {
		identity.Name = *input.Name
	}
	if input.Phone != nil {
		identity.Phone = *input.Phone
	}
	if input.Password != nil && *input.Password != "" {
		identity.SetPassword(*input.Password)
		identity.MustChangePassword = true
	}
	if input.Email != nil {
		identity.Email = entity.NormalizeEmail(*input.Email)
	}
	if input.Role != nil {
		role, ok := entity.ParseRole(string(*input.Role))
		if !ok {
			return domainerrors.NewValidationError(domainerrors.FieldError{Field: "role", Message: "must be one of Admin, MR, Manager"})
		}
		identity.Role = role
	}
	if input.IsActive != nil {
		identity.IsActive = *input.IsActive
	}
	if input.Territory != nil {
		identity.Territory = *input.Territory
	}
	if input.Region != nil {
		identity.Region = *input.Region
	}
	if input.City != nil {
		identity.City = *input.City
	}
	if input.ReportingManagerID != nil {
		if *input.ReportingManagerID == identity.ID {
			return domainerrors.NewValidationError(domainerrors.FieldError{Field: "reportingManagerId", Message: "must not be the identity itself"})
		}
		identity.ReportingManagerID = input.ReportingManagerID
	}

	return nil
}

// Deactivate marks the identity inactive. Its records stay in place.
func (srv *identityService) Deactivate(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	identity, err := srv.load(ctx, id)
	if err != nil {
		return err
	}

	if _, err := authorize(principal, policy.KindIdentity, policy.OpDelete, policy.OwnedBy(identity.ID, "")); err != nil {
		return err
	}
	if identity.ID == principal.ID {
		return domainerrors.ErrBadRequest.WithDetails("You cannot deactivate your own account")
	}
	if !identity.IsActive {
		return nil
	}

	identity.IsActive = false
	if err := srv.identityRepo.Update(ctx, identity); err != nil {
		return storeError(err, repository.ErrIdentityNotFound, domainerrors.ErrUserNotFound, "failed to deactivate identity")
	}

	srv.log(ctx).Info("Identity deactivated", slog.String("identity_id", identity.ID.String()))

	return nil
}

func (srv *identityService) load(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrIdentityNotFound, domainerrors.ErrUserNotFound, "failed to load identity")
	}

	return identity, nil
}
