package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"medrep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-2", GetRequestIDFromContext(WithRequestID(context.Background(), "req-2")))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestPrincipal(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetPrincipal(c))

	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleMR}
	SetPrincipal(c, principal)

	assert.Same(t, principal, GetPrincipal(c))
	assert.Same(t, principal, GetPrincipalFromContext(c.Request().Context()))
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	c := newEchoContext()
	base := slog.New(slog.NewTextHandler(&buf, nil))

	EnrichLogger(c, base, slog.String("role", "MR"))
	GetLogger(c.Request().Context()).Info("hello")

	assert.Contains(t, buf.String(), "role=MR")
}
