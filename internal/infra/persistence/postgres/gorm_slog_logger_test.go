package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newLoggerUnderTest(debug bool) (*gormSlogLogger, *bytes.Buffer, *metrics.Metrics) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{SlowQueryThreshold: 50 * time.Millisecond}
	cfg.Env.Debug = debug

	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())

	return newGormSlogLogger(base, cfg, m).(*gormSlogLogger), &buf, m
}

func statement() (string, int64) {
	return "SELECT * FROM orders", 3
}

func TestGormSlogLogger_SlowQueryIsCounted(t *testing.T) {
	l, buf, m := newLoggerUnderTest(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "SELECT * FROM orders")
	assert.InDelta(t, 1, testutil.ToFloat64(m.DBSlowQueriesTotal), 0)
}

func TestGormSlogLogger_FastQuerySilentOutsideDebug(t *testing.T) {
	l, buf, m := newLoggerUnderTest(false)

	l.Trace(context.Background(), time.Now(), statement, nil)

	assert.Empty(t, buf.String())
	assert.InDelta(t, 0, testutil.ToFloat64(m.DBSlowQueriesTotal), 0)
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	l, buf, _ := newLoggerUnderTest(true)

	l.Trace(context.Background(), time.Now(), statement, nil)

	assert.Contains(t, buf.String(), `"msg":"GORM query"`)
}

func TestGormSlogLogger_Errors(t *testing.T) {
	l, buf, _ := newLoggerUnderTest(false)

	l.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), statement, errors.New("deadlock detected"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "deadlock detected")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _, _ := newLoggerUnderTest(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now().Add(-time.Second), statement, nil)

	assert.Contains(t, reqBuf.String(), `"request_id":"req-42"`)
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf, m := newLoggerUnderTest(true)

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)
	silent.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
	assert.InDelta(t, 0, testutil.ToFloat64(m.DBSlowQueriesTotal), 0)
}

func TestPoolWatcher_Check(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	w := newPoolWatcher(logger, sqlDB, time.Second)
	w.check(context.Background())

	assert.Empty(t, buf.String(), "no waits since the watcher started")
}
