package impl

import (
	"context"
	"testing"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
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

// mrRequestServiceFixtures holds all test dependencies for MR request service tests.
type mrRequestServiceFixtures struct {
	service      usecase.MRRequestUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	requestRepo  *mockRepo.MockMRRequestRepository
	identityRepo *mockRepo.MockIdentityRepository
	sequenceRepo *mockRepo.MockSequenceRepository
	passwordGen  *mockSvc.MockPasswordGenerator
	templates    *mockSvc.MockMailTemplates
	dispatcher   *mockSvc.MockNotificationDispatcher
	publisher    *mockSvc.MockEventPublisher
}

func createTestMRRequestService(t *testing.T) mrRequestServiceFixtures {
	fx := mrRequestServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		requestRepo:  mockRepo.NewMockMRRequestRepository(t),
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		sequenceRepo: mockRepo.NewMockSequenceRepository(t),
		passwordGen:  mockSvc.NewMockPasswordGenerator(t),
		templates:    mockSvc.NewMockMailTemplates(t),
		dispatcher:   mockSvc.NewMockNotificationDispatcher(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewMRRequestService(MRRequestServiceParams{
		TxManager:    fx.txManager,
		RequestRepo:  fx.requestRepo,
		IdentityRepo: fx.identityRepo,
		PasswordGen:  fx.passwordGen,
		Templates:    fx.templates,
		Dispatcher:   fx.dispatcher,
		Publisher:    fx.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func pendingRequest() *entity.MRRequest {
	return &entity.MRRequest{
		ID:        uuid.New(),
		Name:      "Ravi Kumar",
		Email:     "ravi@example.com",
		Phone:     "+91 98450 00000",
		Territory: "South",
		City:      "Bengaluru",
		Status:    entity.MRRequestPending,
	}
}

func TestMRRequestService_Create_Public(t *testing.T) {
	fx := createTestMRRequestService(t)

	ctx := context.Background()
	fx.identityRepo.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(nil, repository.ErrIdentityNotFound)
	fx.requestRepo.EXPECT().FindPendingByEmail(ctx, "ravi@example.com").Return(nil, repository.ErrMRRequestNotFound)
	fx.requestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MRRequest")).Return(nil)

	request, err := fx.service.Create(ctx, nil, &usecase.CreateMRRequestInput{Name: "Ravi Kumar", Email: " Ravi@Example.com ", Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", request.Email)
	assert.Equal(t, entity.MRRequestPending, request.Status)
}

func TestMRRequestService_Create_Duplicates(t *testing.T) {
	ctx := context.Background()

	t.Run("registered email", func(t *testing.T) {
		fx := createTestMRRequestService(t)
		fx.identityRepo.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(&entity.Identity{}, nil)

		_, err := fx.service.Create(ctx, nil, &usecase.CreateMRRequestInput{Email: "ravi@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	})

	t.Run("pending request", func(t *testing.T) {
		fx := createTestMRRequestService(t)
		fx.identityRepo.EXPECT().FindByEmail(ctx, "ravi@example.com").Return(nil, repository.ErrIdentityNotFound)
		fx.requestRepo.EXPECT().FindPendingByEmail(ctx, "ravi@example.com").Return(pendingRequest(), nil)

		_, err := fx.service.Create(ctx, nil, &usecase.CreateMRRequestInput{Email: "ravi@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrPendingRequestExists)
	})
}

func TestMRRequestService_List_MRForbidden(t *testing.T) {
	fx := createTestMRRequestService(t)

	_, err := fx.service.Get(context.Background(), mrPrincipal(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMRRequestService_Approve_Success(t *testing.T) {
	fx := createTestMRRequestService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	request := pendingRequest()
	newID := uuid.New()
	welcome := service.Mail{To: request.Email, Subject: "Welcome"}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.passwordGen.EXPECT().Generate().Return("Tmp-Pass-1234", nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewSequenceRepository().Return(fx.sequenceRepo)
	fx.sequenceRepo.EXPECT().Next(ctx, entity.SequenceEmployee).Return(int64(12), nil)
	fx.repoFactory.EXPECT().NewIdentityRepository().Return(fx.identityRepo)
	fx.identityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(_ context.Context, identity *entity.Identity) {
			plain, ok := identity.PendingPassword()
			assert.True(t, ok)
			assert.Equal(t, "Tmp-Pass-1234", plain)
			identity.ID = newID
		}).
		Return(nil)
	fx.repoFactory.EXPECT().NewMRRequestRepository().Return(fx.requestRepo)
	fx.requestRepo.EXPECT().MarkProcessed(ctx, request).Return(nil)
	fx.templates.EXPECT().
		Welcome(service.WelcomeMailData{
			Name:        "Ravi Kumar",
			Email:       "ravi@example.com",
			EmployeeID:  "EMP000012",
			OneTimePass: "Tmp-Pass-1234",
		}).
		Return(welcome, nil)
	fx.dispatcher.EXPECT().Dispatch(ctx, welcome).Return()
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Run(func(_ context.Context, event *service.WorkflowEvent) {
			assert.Equal(t, service.EventMRRequestApproved, event.Type)
			assert.Equal(t, newID.String(), event.OwnerID)
		}).
		Return(nil)

	out, err := fx.service.Approve(ctx, admin, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MRRequestApproved, out.Request.Status)
	assert.Equal(t, admin.ID, *out.Request.ProcessedBy)
	assert.Equal(t, newID, *out.Request.CreatedUserID)
	assert.Equal(t, "EMP000012", out.Identity.EmployeeID)
	assert.Equal(t, entity.RoleMR, out.Identity.Role)
	assert.True(t, out.Identity.MustChangePassword)
	assert.True(t, out.Identity.IsActive)
	assert.Equal(t, "South", out.Identity.Territory)
}

func TestMRRequestService_Approve_AlreadyProcessed(t *testing.T) {
	fx := createTestMRRequestService(t)

	ctx := context.Background()
	request := pendingRequest()
	request.Status = entity.MRRequestRejected
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.Approve(ctx, adminPrincipal(), request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyProcessed)
}

func TestMRRequestService_Approve_LostRaceSendsNothing(t *testing.T) {
	fx := createTestMRRequestService(t)

	ctx := context.Background()
	request := pendingRequest()

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.passwordGen.EXPECT().Generate().Return("Tmp-Pass-1234", nil)
	expectTx(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewSequenceRepository().Return(fx.sequenceRepo)
	fx.sequenceRepo.EXPECT().Next(ctx, entity.SequenceEmployee).Return(int64(13), nil)
	fx.repoFactory.EXPECT().NewIdentityRepository().Return(fx.identityRepo)
	fx.identityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)
	fx.repoFactory.EXPECT().NewMRRequestRepository().Return(fx.requestRepo)
	fx.requestRepo.EXPECT().MarkProcessed(ctx, request).Return(repository.ErrAlreadyProcessed)

	_, err := fx.service.Approve(ctx, adminPrincipal(), request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyProcessed)
}

func TestMRRequestService_Approve_PasswordGeneratorFails(t *testing.T) {
	fx := createTestMRRequestService(t)

	ctx := context.Background()
	request := pendingRequest()
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.passwordGen.EXPECT().Generate().Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Approve(ctx, adminPrincipal(), request.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate one-time password")
}

func TestMRRequestService_Reject_MailRenderFailureIsLogged(t *testing.T) {
	fx := createTestMRRequestService(t)

	ctx := context.Background()
	request := pendingRequest()

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().MarkProcessed(ctx, request).Return(nil)
	fx.templates.EXPECT().
		Rejection(service.RejectionMailData{Name: "Ravi Kumar", Email: "ravi@example.com", Reason: "Territory full"}).
		Return(service.Mail{}, errors.New("template missing"))
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.WorkflowEvent")).Return(nil)

	rejected, err := fx.service.Reject(ctx, adminPrincipal(), request.ID, &usecase.RejectMRRequestInput{Reason: "Territory full"})
	require.NoError(t, err)
	assert.Equal(t, entity.MRRequestRejected, rejected.Status)
	assert.Equal(t, "Territory full", rejected.RejectionReason)
}
