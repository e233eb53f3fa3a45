package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medrep/config"
	apimiddleware "medrep/internal/delivery/api/middleware"
	"medrep/internal/delivery/api/router"
	"medrep/internal/delivery/api/router/handler"
	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/infra/metrics"
	mockUsecase "medrep/internal/mocks/usecase"
	"medrep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixtures struct {
	echo    *echo.Echo
	metrics *metrics.Metrics
	authUC  *mockUsecase.MockAuthUsecase
	visitUC *mockUsecase.MockVisitUsecase
	mrReqUC *mockUsecase.MockMRRequestUsecase
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())

	authUC := mockUsecase.NewMockAuthUsecase(t)
	visitUC := mockUsecase.NewMockVisitUsecase(t)
	mrReqUC := mockUsecase.NewMockMRRequestUsecase(t)

	routerParams := router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		IdentityHandler:    handler.NewIdentityHandler(handler.IdentityHandlerParams{IdentityUC: mockUsecase.NewMockIdentityUsecase(t)}),
		DoctorHandler:      handler.NewDoctorHandler(handler.DoctorHandlerParams{DoctorUC: mockUsecase.NewMockDoctorUsecase(t)}),
		ProductHandler:     handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}),
		VisitHandler:       handler.NewVisitHandler(handler.VisitHandlerParams{VisitUC: visitUC}),
		OrderHandler:       handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)}),
		TargetHandler:      handler.NewTargetHandler(handler.TargetHandlerParams{TargetUC: mockUsecase.NewMockTargetUsecase(t)}),
		PerformanceHandler: handler.NewPerformanceHandler(handler.PerformanceHandlerParams{PerformanceUC: mockUsecase.NewMockPerformanceUsecase(t)}),
		ActivityHandler:    handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: mockUsecase.NewMockActivityUsecase(t)}),
		MRRequestHandler:   handler.NewMRRequestHandler(handler.MRRequestHandlerParams{MRRequestUC: mrReqUC}),
		DashboardHandler:   handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: mockUsecase.NewMockDashboardUsecase(t)}),
		AuthMiddleware:     apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC, Logger: logger}),
		Metrics:            m,
		Config:             cfg,
	}

	e := NewEcho(ServerParams{
		Cfg:          cfg,
		Logger:       logger,
		Metrics:      m,
		RouterParams: routerParams,
	})

	return apiFixtures{
		echo:    e,
		metrics: m,
		authUC:  authUC,
		visitUC: visitUC,
		mrReqUC: mrReqUC,
	}
}

func (f apiFixtures) do(t *testing.T, method, target, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (f apiFixtures) expectPrincipal(principal *entity.Principal) {
	f.authUC.EXPECT().
		Authenticate(mock.Anything, testToken).
		Return(principal, nil)
}

func mrPrincipal() *entity.Principal {
	return &entity.Principal{ID: uuid.New(), Role: entity.RoleMR, Name: "Asha MR", Email: "asha@example.com"}
}

func TestServer_HealthCheck(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_SecuredRouteWithoutToken(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.do(t, http.MethodGet, "/api/visits", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, domainerrors.ErrUnauthenticated.ErrorCode(), env.Code)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
}

func TestServer_SecuredRouteWithInvalidToken(t *testing.T) {
	f := createTestAPI(t)

	f.authUC.EXPECT().
		Authenticate(mock.Anything, testToken).
		Return(nil, domainerrors.ErrTokenInvalid)

	rec, env := f.do(t, http.MethodGet, "/api/visits", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrTokenInvalid.ErrorCode(), env.Code)
}

func TestServer_PublicRoutesSkipAuthentication(t *testing.T) {
	f := createTestAPI(t)

	f.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "asha@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/auth/login", `{"email":"asha@example.com","password":"secret"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"token":"jwt"`)
}

func TestServer_ListPassesFiltersAndPrincipal(t *testing.T) {
	f := createTestAPI(t)
	principal := mrPrincipal()
	f.expectPrincipal(principal)

	page := &query.Page[*entity.VisitReport]{
		Items:      []*entity.VisitReport{{ID: uuid.New(), VisitID: "VIS000001"}},
		Pagination: query.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
	}
	f.visitUC.EXPECT().
		List(mock.Anything, principal, mock.MatchedBy(func(p query.Params) bool {
			return p.Page == 2 && p.Limit == 5 && p.Search == "cardio" &&
				p.Filters["status"] == "Pending,Approved"
		})).
		Return(page, nil)

	rec, env := f.do(t, http.MethodGet, "/api/visits?status=Pending,Approved&search=cardio&page=2&limit=5", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var data query.Page[entity.VisitReport]
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 1)
	assert.Equal(t, "VIS000001", data.Items[0].VisitID)
	assert.Equal(t, int64(6), data.Pagination.Total)
}

func TestServer_ListRejectsBadPaging(t *testing.T) {
	f := createTestAPI(t)
	f.expectPrincipal(mrPrincipal())

	rec, env := f.do(t, http.MethodGet, "/api/visits?page=0&limit=abc", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Code)

	var fields []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.ElementsMatch(t, []domainerrors.FieldError{
		{Field: "page", Message: "must be a positive number"},
		{Field: "limit", Message: "must be a positive number"},
	}, fields)
}

func TestServer_CreateValidatesBody(t *testing.T) {
	f := createTestAPI(t)
	f.expectPrincipal(mrPrincipal())

	rec, env := f.do(t, http.MethodPost, "/api/visits", `{"samplesGiven":-1}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Code)

	var fields []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(env.Data, &fields))

	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Field)
	}
	assert.ElementsMatch(t, []string{"doctor", "visitDate", "samplesGiven"}, names)
}

func TestServer_MalformedBody(t *testing.T) {
	f := createTestAPI(t)
	f.expectPrincipal(mrPrincipal())

	rec, env := f.do(t, http.MethodPost, "/api/visits", `{"doctor":`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrBadRequest.ErrorCode(), env.Code)
	assert.Equal(t, "Malformed request body", env.Message)
}

func TestServer_InvalidPathID(t *testing.T) {
	f := createTestAPI(t)
	f.expectPrincipal(mrPrincipal())

	rec, env := f.do(t, http.MethodPost, "/api/visits/not-an-id/approve", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(env.Data), `"field":"id"`)
}

func TestServer_DomainErrorRendering(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "forbidden",
			err:        errors.WithStack(domainerrors.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.ErrForbidden.ErrorCode(),
			wantMsg:    domainerrors.ErrForbidden.Message(),
		},
		{
			name:       "invalid state with details",
			err:        domainerrors.ErrInvalidState.WithDetails("Visit report is already approved"),
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrInvalidState.ErrorCode(),
			wantMsg:    "Visit report is already approved",
		},
		{
			name:       "unexpected error is hidden",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
			wantMsg:    "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			f.expectPrincipal(mrPrincipal())

			f.visitUC.EXPECT().
				Approve(mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.err)

			rec, env := f.do(t, http.MethodPost, "/api/visits/"+uuid.NewString()+"/approve", "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestServer_RejectPassesReason(t *testing.T) {
	f := createTestAPI(t)
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	f.expectPrincipal(principal)

	id := uuid.New()
	f.visitUC.EXPECT().
		Reject(mock.Anything, principal, id, &usecase.ReviewVisitInput{Reason: "missing samples"}).
		Return(&entity.VisitReport{ID: id, Status: entity.VisitStatusRejected}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/visits/"+id.String()+"/reject", `{"reason":"missing samples"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Visit report rejected", env.Message)
}

func TestServer_RecordsRequestMetrics(t *testing.T) {
	f := createTestAPI(t)

	f.do(t, http.MethodGet, "/health", "", false)
	f.do(t, http.MethodGet, "/health", "", false)

	assert.InDelta(t, 2, testutil.ToFloat64(f.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")), 0)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
