package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medrep/config"
	"medrep/internal/domain/entity"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	"medrep/internal/infra/metrics"
	mockRepo "medrep/internal/mocks/repository"
	mockService "medrep/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushHandlerFixtures struct {
	handler      *PushHandler
	identityRepo *mockRepo.MockIdentityRepository
	mailer       *mockService.MockMailer
	templates    *mockService.MockMailTemplates
	metrics      *metrics.Metrics
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	mailer := mockService.NewMockMailer(t)
	templates := mockService.NewMockMailTemplates(t)
	m := metrics.NewMetrics()

	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		IdentityRepo: identityRepo,
		Mailer:       mailer,
		Templates:    templates,
		Metrics:      m,
	})

	return pushHandlerFixtures{
		handler:      h,
		identityRepo: identityRepo,
		mailer:       mailer,
		templates:    templates,
		metrics:      m,
	}
}

func pushRequest(t *testing.T, event *service.WorkflowEvent) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{"request_id": "req-push"}
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func visitRejectedEvent(ownerID uuid.UUID) *service.WorkflowEvent {
	return &service.WorkflowEvent{
		Type:       service.EventVisitRejected,
		ResourceID: uuid.NewString(),
		OwnerID:    ownerID.String(),
		Status:     "Rejected",
		Attributes: map[string]string{"visit_id": "VIS000004", "reason": "Missing doctor signature"},
	}
}

func TestPushHandler_VisitRejected_EmailsOwner(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	ownerID := uuid.New()
	owner := &entity.Identity{ID: ownerID, Name: "Asha", Email: "asha@example.com", IsActive: true}
	mail := service.Mail{To: owner.Email, Subject: "Visit report VIS000004 is Rejected"}

	fx.identityRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(owner, nil)
	fx.templates.EXPECT().
		StatusUpdate(service.StatusMailData{
			Name:      "Asha",
			Email:     "asha@example.com",
			Resource:  "Visit report",
			Reference: "VIS000004",
			Status:    "Rejected",
			Reason:    "Missing doctor signature",
		}).
		Return(mail, nil)
	fx.mailer.EXPECT().Send(mock.Anything, mail).Return(&service.MailResult{Success: true, MessageID: "m-1"}, nil)

	rec := serve(fx.handler, pushRequest(t, visitRejectedEvent(ownerID)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeSent)), 0)
}

func TestPushHandler_OrderStatusChanged_UsesOrderNumber(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	ownerID := uuid.New()
	owner := &entity.Identity{ID: ownerID, Name: "Ravi", Email: "ravi@example.com", IsActive: true}

	fx.identityRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(owner, nil)
	fx.templates.EXPECT().
		StatusUpdate(mock.MatchedBy(func(data service.StatusMailData) bool {
			return data.Resource == "Order" && data.Reference == "ORD000042" && data.Status == "Shipped"
		})).
		Return(service.Mail{To: owner.Email}, nil)
	fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(&service.MailResult{Success: true}, nil)

	rec := serve(fx.handler, pushRequest(t, &service.WorkflowEvent{
		Type:       service.EventOrderStatusChanged,
		ResourceID: uuid.NewString(),
		OwnerID:    ownerID.String(),
		Status:     "Shipped",
		Attributes: map[string]string{"order_number": "ORD000042", "previous_status": "Confirmed"},
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MRRequestEventIsAcked(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	rec := serve(fx.handler, pushRequest(t, &service.WorkflowEvent{
		Type:       service.EventMRRequestApproved,
		ResourceID: uuid.NewString(),
		Status:     "approved",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MailerFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	ownerID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(mock.Anything, ownerID).
		Return(&entity.Identity{ID: ownerID, Email: "mr@example.com", IsActive: true}, nil)
	fx.templates.EXPECT().StatusUpdate(mock.Anything).Return(service.Mail{To: "mr@example.com"}, nil)
	fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(&service.MailResult{Success: false, Error: "throttled"}, nil)

	rec := serve(fx.handler, pushRequest(t, visitRejectedEvent(ownerID)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeFailed)), 0)
}

func TestPushHandler_RepositoryFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	ownerID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(nil, errors.New("connection reset"))

	rec := serve(fx.handler, pushRequest(t, visitRejectedEvent(ownerID)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownOwnerIsDropped(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	ownerID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(nil, repository.ErrIdentityNotFound)

	rec := serve(fx.handler, pushRequest(t, visitRejectedEvent(ownerID)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_InactiveOwnerIsSkipped(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	ownerID := uuid.New()

	fx.identityRepo.EXPECT().FindByID(mock.Anything, ownerID).
		Return(&entity.Identity{ID: ownerID, IsActive: false}, nil)

	rec := serve(fx.handler, pushRequest(t, visitRejectedEvent(ownerID)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(fx.handler, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	fx := createTestPushHandler(t, cfg)
	require.True(t, fx.handler.verifyPushAuth)

	t.Run("missing header", func(t *testing.T) {
		rec := serve(fx.handler, pushRequest(t, visitRejectedEvent(uuid.New())))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		req := pushRequest(t, visitRejectedEvent(uuid.New()))
		req.Header.Set("Authorization", "Bearer signed")

		rec := serve(fx.handler, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		fx.handler.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}

		req := pushRequest(t, &service.WorkflowEvent{Type: service.EventMRRequestRejected})
		req.Header.Set("Authorization", "Bearer signed")

		rec := serve(fx.handler, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNewPushHandler_SkipsVerificationLocally(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "local"

	fx := createTestPushHandler(t, cfg)

	assert.False(t, fx.handler.verifyPushAuth)
}
