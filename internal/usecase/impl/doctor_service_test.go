package impl

import (
	"context"
	"testing"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	mockRepo "medrep/internal/mocks/repository"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// doctorServiceFixtures holds all test dependencies for doctor service tests.
type doctorServiceFixtures struct {
	service      usecase.DoctorUsecase
	doctorRepo   *mockRepo.MockDoctorRepository
	identityRepo *mockRepo.MockIdentityRepository
}

func createTestDoctorService(t *testing.T) doctorServiceFixtures {
	doctorRepo := mockRepo.NewMockDoctorRepository(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)

	svc := NewDoctorService(DoctorServiceParams{
		DoctorRepo:   doctorRepo,
		IdentityRepo: identityRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return doctorServiceFixtures{
		service:      svc,
		doctorRepo:   doctorRepo,
		identityRepo: identityRepo,
	}
}

func TestDoctorService_Create_MRIsAssigned(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	principal := mrPrincipal()

	fx.doctorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Doctor")).Return(nil)

	doctor, err := fx.service.Create(ctx, principal, &usecase.CreateDoctorInput{
		Name:           "Dr. Rao",
		Specialization: "Cardiology",
		AssignedMRs:    []uuid.UUID{uuid.New(), uuid.New()},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{principal.ID}, doctor.AssignedMRs)
	assert.Equal(t, principal.ID, doctor.CreatedBy)
	assert.True(t, doctor.IsActive)
}

func TestDoctorService_Create_AdminAssignsActiveMRs(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	mrID := uuid.New()

	fx.identityRepo.EXPECT().FindActiveByIDs(ctx, []uuid.UUID{mrID, mrID}, entity.RoleMR).
		Return([]*entity.Identity{{ID: mrID, Role: entity.RoleMR, IsActive: true}}, nil)
	fx.doctorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Doctor")).Return(nil)

	doctor, err := fx.service.Create(ctx, adminPrincipal(), &usecase.CreateDoctorInput{
		Name:           "Dr. Mehta",
		Specialization: "Dermatology",
		AssignedMRs:    []uuid.UUID{mrID, mrID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mrID}, doctor.AssignedMRs)
}

func TestDoctorService_AssignMRs_ReportsEveryInvalidID(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	doctor := &entity.Doctor{ID: uuid.New()}
	active, inactive, admin := uuid.New(), uuid.New(), uuid.New()

	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)
	fx.identityRepo.EXPECT().FindActiveByIDs(ctx, []uuid.UUID{active, inactive, admin}, entity.RoleMR).
		Return([]*entity.Identity{{ID: active, Role: entity.RoleMR, IsActive: true}}, nil)

	_, err := fx.service.AssignMRs(ctx, adminPrincipal(), doctor.ID, &usecase.AssignMRsInput{MRIDs: []uuid.UUID{active, inactive, admin}})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []domainerrors.FieldError{
		{Field: "mrIds", Message: inactive.String() + " is not an active MR"},
		{Field: "mrIds", Message: admin.String() + " is not an active MR"},
	}, verr.Fields)
}

func TestDoctorService_AssignMRs_ReplacesSet(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{uuid.New()}}
	mrID := uuid.New()

	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)
	fx.identityRepo.EXPECT().FindActiveByIDs(ctx, []uuid.UUID{mrID}, entity.RoleMR).
		Return([]*entity.Identity{{ID: mrID, Role: entity.RoleMR, IsActive: true}}, nil)
	fx.doctorRepo.EXPECT().ReplaceAssignments(ctx, doctor.ID, []uuid.UUID{mrID}).Return(nil)

	updated, err := fx.service.AssignMRs(ctx, adminPrincipal(), doctor.ID, &usecase.AssignMRsInput{MRIDs: []uuid.UUID{mrID}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mrID}, updated.AssignedMRs)
}

func TestDoctorService_AssignMRs_MRForbidden(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{principal.ID}}
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

	_, err := fx.service.AssignMRs(ctx, principal, doctor.ID, &usecase.AssignMRsInput{MRIDs: []uuid.UUID{principal.ID}})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDoctorService_Update_AssignedMRCannotDeactivate(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	doctor := &entity.Doctor{ID: uuid.New(), Name: "Dr. Iyer", AssignedMRs: []uuid.UUID{principal.ID}, IsActive: true}
	hospital := "City General"
	inactive := false

	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)
	fx.doctorRepo.EXPECT().Update(ctx, doctor).Return(nil)

	updated, err := fx.service.Update(ctx, principal, doctor.ID, &usecase.UpdateDoctorInput{Hospital: &hospital, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "City General", updated.Hospital)
	assert.True(t, updated.IsActive)
}

func TestDoctorService_Get_UnassignedForbidden(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{uuid.New()}}
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

	_, err := fx.service.Get(ctx, mrPrincipal(), doctor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDoctorService_Delete_MRForbidden(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{principal.ID}}
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

	err := fx.service.Delete(ctx, principal, doctor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDoctorService_Delete_NotFound(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.doctorRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDoctorNotFound)

	err := fx.service.Delete(ctx, adminPrincipal(), id)
	assert.ErrorIs(t, err, domainerrors.ErrDoctorNotFound)
}

func TestDoctorService_List_ScopedToAssignments(t *testing.T) {
	fx := createTestDoctorService(t)

	ctx := context.Background()
	principal := mrPrincipal()

	fx.doctorRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*query.Criteria")).
		Run(func(_ context.Context, criteria *query.Criteria) {
			require.NotNil(t, criteria.OwnerID)
			assert.Equal(t, principal.ID, *criteria.OwnerID)
		}).
		Return([]*entity.Doctor{}, int64(0), nil)

	page, err := fx.service.List(ctx, principal, query.Params{Owner: uuid.New().String()})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
