package impl

import (
	"context"
	"log/slog"
	"slices"

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

// doctorService implements the DoctorUsecase interface.
type doctorService struct {
	doctorRepo   repository.DoctorRepository
	identityRepo repository.IdentityRepository
	builder      *query.Builder
	logger       *slog.Logger
}

// DoctorServiceParams holds dependencies for DoctorService, injected by Fx.
type DoctorServiceParams struct {
	fx.In

	DoctorRepo   repository.DoctorRepository
	IdentityRepo repository.IdentityRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDoctorService is the constructor for doctorService.
func NewDoctorService(params DoctorServiceParams) usecase.DoctorUsecase {
	return &doctorService{
		doctorRepo:   params.DoctorRepo,
		identityRepo: params.IdentityRepo,
		builder:      newQueryBuilder(params.Config),
		logger:       params.Logger,
	}
}

func (srv *doctorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func doctorTarget(doctor *entity.Doctor) *policy.Target {
	return &policy.Target{Owners: doctor.AssignedMRs}
}

func (srv *doctorService) List(ctx context.Context, principal *entity.Principal, params query.Params) (*query.Page[*entity.Doctor], error) {
	decision, err := authorize(principal, policy.KindDoctor, policy.OpList, nil)
	if err != nil {
		return nil, err
	}

	criteria, err := srv.builder.Build(decision.Scope, doctorSpec, params)
	if err != nil {
		return nil, err
	}

	doctors, total, err := srv.doctorRepo.List(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doctors")
	}

	return query.NewPage(doctors, criteria, total), nil
}

func (srv *doctorService) Get(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindDoctor, policy.OpRead, doctorTarget(doctor)); err != nil {
		return nil, err
	}

	return doctor, nil
}

// Create stores a doctor. An MR creating a doctor is assigned to it.
func (srv *doctorService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateDoctorInput) (*entity.Doctor, error) {
	decision, err := authorize(principal, policy.KindDoctor, policy.OpCreate, nil)
	if err != nil {
		return nil, err
	}
	stripRestricted(ctx, srv.log(ctx), principal, input)

	assigned := input.AssignedMRs
	if decision.Owner != uuid.Nil {
		assigned = []uuid.UUID{decision.Owner}
	} else if err := srv.ensureActiveMRs(ctx, assigned); err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
		Qualification:  input.Qualification,
		Hospital:       input.Hospital,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		City:           input.City,
		Territory:      input.Territory,
		Category:       input.Category,
		AssignedMRs:    dedupe(assigned),
		IsActive:       true,
		CreatedBy:      principal.ID,
	}

	if err := srv.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, storeError(err, nil, nil, "failed to create doctor")
	}

	srv.log(ctx).Info("Doctor created", slog.String("doctor_id", doctor.ID.String()), slog.Int("assigned", len(doctor.AssignedMRs)))

	return doctor, nil
}

func (srv *doctorService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateDoctorInput) (*entity.Doctor, error) {
	doctor, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindDoctor, policy.OpUpdate, doctorTarget(doctor)); err != nil {
		return nil, err
	}
	stripRestricted(ctx, srv.log(ctx), principal, input)

	applyDoctorUpdate(doctor, input)

	if err := srv.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, storeError(err, repository.ErrDoctorNotFound, domainerrors.ErrDoctorNotFound, "failed to update doctor")
	}

	return doctor, nil
}

func applyDoctorUpdate(doctor *entity.Doctor, input *usecase.UpdateDoctorInput) {
	setIf(&doctor.Name, input.Name)
	setIf(&doctor.Specialization, input.Specialization)
	setIf(&doctor.Qualification, input.Qualification)
	setIf(&doctor.Hospital, input.Hospital)
	setIf(&doctor.Phone, input.Phone)
	setIf(&doctor.Email, input.Email)
	setIf(&doctor.Address, input.Address)
	setIf(&doctor.City, input.City)
	setIf(&doctor.Territory, input.Territory)
	setIf(&doctor.Category, input.Category)
	setIf(&doctor.IsActive, input.IsActive)
}

func (srv *doctorService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	doctor, err := srv.load(ctx, id)
	if err != nil {
		return err
	}

	if _, err := authorize(principal, policy.KindDoctor, policy.OpDelete, doctorTarget(doctor)); err != nil {
		return err
	}

	if err := srv.doctorRepo.Delete(ctx, id); err != nil {
		return storeError(err, repository.ErrDoctorNotFound, domainerrors.ErrDoctorNotFound, "failed to delete doctor")
	}

	srv.log(ctx).Info("Doctor deleted", slog.String("doctor_id", id.String()))

	return nil
}

// AssignMRs replaces the doctor's assignment set. Every id must be an active MR.
func (srv *doctorService) AssignMRs(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.AssignMRsInput) (*entity.Doctor, error) {
	doctor, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(principal, policy.KindDoctor, policy.OpAssign, doctorTarget(doctor)); err != nil {
		return nil, err
	}

	mrIDs := dedupe(input.MRIDs)
	if err := srv.ensureActiveMRs(ctx, mrIDs); err != nil {
		return nil, err
	}

	if err := srv.doctorRepo.ReplaceAssignments(ctx, id, mrIDs); err != nil {
		return nil, storeError(err, repository.ErrDoctorNotFound, domainerrors.ErrDoctorNotFound, "failed to assign MRs")
	}
	doctor.AssignedMRs = mrIDs

	srv.log(ctx).Info("Doctor assignments replaced", slog.String("doctor_id", id.String()), slog.Int("assigned", len(mrIDs)))

	return doctor, nil
}

func (srv *doctorService) ensureActiveMRs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := srv.identityRepo.FindActiveByIDs(ctx, ids, entity.RoleMR)
	if err != nil {
		return errors.Wrap(err, "failed to load MRs")
	}

	verr := domainerrors.NewValidationError()
	for _, id := range ids {
		if !slices.ContainsFunc(found, func(identity *entity.Identity) bool { return identity.ID == id }) {
			verr.Add("mrIds", id.String()+" is not an active MR")
		}
	}

	return verr.OrNil()
}

func (srv *doctorService) load(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := srv.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, repository.ErrDoctorNotFound, domainerrors.ErrDoctorNotFound, "failed to load doctor")
	}

	return doctor, nil
}

// setIf copies *src into dst when src is set.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != uuid.Nil && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}
