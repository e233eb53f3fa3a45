package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsWithRegistry(t *testing.T) {
	m := NewMetricsWithRegistry(prometheus.NewRegistry())

	m.NotificationsTotal.WithLabelValues(OutcomeFailed).Inc()
	m.NotificationsTotal.WithLabelValues(OutcomeFailed).Inc()
	m.RollupLogsUpserted.Add(3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(OutcomeFailed)), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.RollupLogsUpserted), 0)
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/orders", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `medrep_http_requests_total{method="GET",route="/api/orders",status="200"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}
