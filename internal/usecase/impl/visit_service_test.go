package impl

import (
	"context"
	"testing"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	mockRepo "medrep/internal/mocks/repository"
	mockSvc "medrep/internal/mocks/service"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// visitServiceFixtures holds all test dependencies for visit service tests.
type visitServiceFixtures struct {
	service      usecase.VisitUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	visitRepo    *mockRepo.MockVisitReportRepository
	doctorRepo   *mockRepo.MockDoctorRepository
	identityRepo *mockRepo.MockIdentityRepository
	sequenceRepo *mockRepo.MockSequenceRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	visitRepo := mockRepo.NewMockVisitReportRepository(t)
	doctorRepo := mockRepo.NewMockDoctorRepository(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	sequenceRepo := mockRepo.NewMockSequenceRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewVisitService(VisitServiceParams{
		TxManager:    txManager,
		VisitRepo:    visitRepo,
		DoctorRepo:   doctorRepo,
		IdentityRepo: identityRepo,
		Publisher:    publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return visitServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		visitRepo:    visitRepo,
		doctorRepo:   doctorRepo,
		identityRepo: identityRepo,
		sequenceRepo: sequenceRepo,
		publisher:    publisher,
	}
}

func (f visitServiceFixtures) expectCreate(ctx context.Context, next int64) {
	expectTx(f.txManager, f.repoFactory)
	f.repoFactory.EXPECT().NewSequenceRepository().Return(f.sequenceRepo)
	f.sequenceRepo.EXPECT().Next(ctx, entity.SequenceVisit).Return(next, nil)
	f.repoFactory.EXPECT().NewVisitReportRepository().Return(f.visitRepo)
	f.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.VisitReport")).Return(nil)
}

func TestVisitService_List_ScopedToOwner(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()

	fx.visitRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*query.Criteria")).
		Run(func(_ context.Context, criteria *query.Criteria) {
			require.NotNil(t, criteria.OwnerID)
			assert.Equal(t, principal.ID, *criteria.OwnerID)
			assert.Equal(t, 100, criteria.Limit)
		}).
		Return([]*entity.VisitReport{{ID: uuid.New(), MRID: principal.ID}}, int64(1), nil)

	page, err := fx.service.List(ctx, principal, query.Params{Owner: uuid.New().String(), Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestVisitService_Create_AsMR(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	doctorID := uuid.New()
	product := uuid.New()
	approved := entity.VisitStatusApproved

	fx.doctorRepo.EXPECT().FindByID(ctx, doctorID).Return(&entity.Doctor{ID: doctorID, AssignedMRs: []uuid.UUID{principal.ID}}, nil)
	fx.expectCreate(ctx, 7)

	visit, err := fx.service.Create(ctx, principal, &usecase.CreateVisitInput{
		MRID:              uuid.New(),
		DoctorID:          doctorID,
		VisitDate:         time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		ProductsDiscussed: []uuid.UUID{product, product},
		Status:            &approved,
	})
	require.NoError(t, err)
	assert.Equal(t, "VIS000007", visit.VisitID)
	assert.Equal(t, principal.ID, visit.MRID)
	assert.Equal(t, entity.VisitStatusDraft, visit.Status)
	assert.Equal(t, []uuid.UUID{product}, visit.ProductsDiscussed)
}

func TestVisitService_Create_AdminForOtherMR(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	mrID := uuid.New()
	doctorID := uuid.New()
	submitted := entity.VisitStatusSubmitted

	fx.identityRepo.EXPECT().FindByID(ctx, mrID).Return(&entity.Identity{ID: mrID, Role: entity.RoleMR}, nil)
	fx.doctorRepo.EXPECT().FindByID(ctx, doctorID).Return(&entity.Doctor{ID: doctorID}, nil)
	fx.expectCreate(ctx, 8)

	visit, err := fx.service.Create(ctx, admin, &usecase.CreateVisitInput{MRID: mrID, DoctorID: doctorID, Status: &submitted})
	require.NoError(t, err)
	assert.Equal(t, mrID, visit.MRID)
	assert.Equal(t, entity.VisitStatusSubmitted, visit.Status)
}

func TestVisitService_Create_ReviewStatusRejected(t *testing.T) {
	fx := createTestVisitService(t)

	approved := entity.VisitStatusApproved
	_, err := fx.service.Create(context.Background(), adminPrincipal(), &usecase.CreateVisitInput{DoctorID: uuid.New(), Status: &approved})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestVisitService_Create_UnknownDoctor(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	fx.doctorRepo.EXPECT().FindByID(ctx, doctorID).Return(nil, repository.ErrDoctorNotFound)

	_, err := fx.service.Create(ctx, mrPrincipal(), &usecase.CreateVisitInput{DoctorID: doctorID})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestVisitService_Create_UnassignedDoctorForbidden(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	doctor := &entity.Doctor{ID: uuid.New(), AssignedMRs: []uuid.UUID{uuid.New()}}
	fx.doctorRepo.EXPECT().FindByID(ctx, doctor.ID).Return(doctor, nil)

	_, err := fx.service.Create(ctx, mrPrincipal(), &usecase.CreateVisitInput{DoctorID: doctor.ID})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVisitService_Update_ReassignToUnassignedDoctor(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: principal.ID, DoctorID: uuid.New(), Status: entity.VisitStatusDraft}
	other := &entity.Doctor{ID: uuid.New()}

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.doctorRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

	_, err := fx.service.Update(ctx, principal, visit.ID, &usecase.UpdateVisitInput{DoctorID: &other.ID})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVisitService_Get_OtherMRForbidden(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: uuid.New(), Status: entity.VisitStatusDraft}
	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

	_, err := fx.service.Get(ctx, mrPrincipal(), visit.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVisitService_Get_NotFound(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.visitRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrVisitNotFound)

	_, err := fx.service.Get(ctx, adminPrincipal(), id)
	assert.ErrorIs(t, err, domainerrors.ErrVisitNotFound)
}

func TestVisitService_Update_OwnerSubmitsDraft(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: principal.ID, Status: entity.VisitStatusDraft, Purpose: "intro"}
	submitted := entity.VisitStatusSubmitted
	notes := "Discussed dosage"

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.visitRepo.EXPECT().Update(ctx, visit, entity.VisitStatusDraft).Return(nil)

	updated, err := fx.service.Update(ctx, principal, visit.ID, &usecase.UpdateVisitInput{Status: &submitted, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusSubmitted, updated.Status)
	assert.Equal(t, "Discussed dosage", updated.Notes)
	assert.Equal(t, "intro", updated.Purpose)
}

func TestVisitService_Update_ApprovedLockedForOwner(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: principal.ID, Status: entity.VisitStatusApproved}
	notes := "edit"

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

	_, err := fx.service.Update(ctx, principal, visit.ID, &usecase.UpdateVisitInput{Notes: &notes})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestVisitService_Update_Stale(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: principal.ID, Status: entity.VisitStatusSubmitted}
	notes := "late edit"

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.visitRepo.EXPECT().Update(ctx, visit, entity.VisitStatusSubmitted).Return(repository.ErrStaleState)

	_, err := fx.service.Update(ctx, principal, visit.ID, &usecase.UpdateVisitInput{Notes: &notes})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestVisitService_Update_AdminStatusOnReviewedReport(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: uuid.New(), Status: entity.VisitStatusApproved}
	rejected := entity.VisitStatusRejected

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

	_, err := fx.service.Update(ctx, adminPrincipal(), visit.ID, &usecase.UpdateVisitInput{Status: &rejected})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "POST /api/visits/:id/approve")
	assert.Contains(t, appErr.Details(), "POST /api/visits/:id/reject")
}

func TestVisitService_Approve_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	freezeTime(t, now)
	admin := adminPrincipal()
	visit := &entity.VisitReport{ID: uuid.New(), VisitID: "VIS000001", MRID: uuid.New(), Status: entity.VisitStatusSubmitted}

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.visitRepo.EXPECT().Update(ctx, visit, entity.VisitStatusSubmitted).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Run(func(_ context.Context, event *service.WorkflowEvent) {
			assert.Equal(t, service.EventVisitApproved, event.Type)
			assert.Equal(t, visit.MRID.String(), event.OwnerID)
			assert.Equal(t, admin.ID.String(), event.ActorID)
			assert.Equal(t, "VIS000001", event.Attributes["visit_id"])
		}).
		Return(nil)

	approved, err := fx.service.Approve(ctx, admin, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusApproved, approved.Status)
	assert.Equal(t, admin.ID, *approved.ApprovedBy)
	assert.Equal(t, now, *approved.ApprovedAt)
}

func TestVisitService_Reject_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: uuid.New(), Status: entity.VisitStatusDraft}

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.visitRepo.EXPECT().Update(ctx, visit, entity.VisitStatusDraft).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).Return(errors.New("broker down"))

	rejected, err := fx.service.Reject(ctx, adminPrincipal(), visit.ID, &usecase.ReviewVisitInput{Reason: "Missing signature"})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusRejected, rejected.Status)
	assert.Equal(t, "Missing signature", rejected.RejectionReason)
}

func TestVisitService_Approve_AlreadyReviewed(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: uuid.New(), Status: entity.VisitStatusRejected}
	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

	_, err := fx.service.Approve(ctx, adminPrincipal(), visit.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestVisitService_Approve_MRForbidden(t *testing.T) {
	fx := createTestVisitService(t)

	_, err := fx.service.Approve(context.Background(), mrPrincipal(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVisitService_Delete_Owner(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	principal := mrPrincipal()
	visit := &entity.VisitReport{ID: uuid.New(), MRID: principal.ID, Status: entity.VisitStatusDraft}

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.visitRepo.EXPECT().Delete(ctx, visit.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, principal, visit.ID))
}
