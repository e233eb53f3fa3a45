package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medrep/config"
	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	mockUsecase "medrep/internal/mocks/usecase"
	"medrep/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduler(t *testing.T, cfg *config.SchedulerConfig) (*scheduler, *mockUsecase.MockPerformanceUsecase) {
	t.Helper()

	performanceUC := mockUsecase.NewMockPerformanceUsecase(t)
	d, err := NewScheduler(SchedulerParams{
		Lc:            fxtest.NewLifecycle(t),
		Cfg:           &config.Config{Scheduler: cfg},
		Logger:        discardLogger(),
		PerformanceUC: performanceUC,
	})
	require.NoError(t, err)

	return d.(*scheduler), performanceUC
}

func TestNewScheduler_RegistersRollup(t *testing.T) {
	s, _ := newTestScheduler(t, &config.SchedulerConfig{Enabled: true, PerformanceRollupSpec: "15 0 1 * *"})

	entries := s.cron.Entries()
	require.Len(t, entries, 1)

	next := entries[0].Schedule.Next(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 15, 0, 0, time.UTC), next)
}

func TestNewScheduler_Disabled(t *testing.T) {
	s, _ := newTestScheduler(t, &config.SchedulerConfig{Enabled: false, PerformanceRollupSpec: "15 0 1 * *"})

	assert.Empty(t, s.cron.Entries())
	assert.NoError(t, s.Serve(context.Background()))
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(SchedulerParams{
		Lc:            fxtest.NewLifecycle(t),
		Cfg:           &config.Config{Scheduler: &config.SchedulerConfig{Enabled: true, PerformanceRollupSpec: "not a cron"}},
		Logger:        discardLogger(),
		PerformanceUC: mockUsecase.NewMockPerformanceUsecase(t),
	})

	assert.Error(t, err)
}

func TestRollupPreviousMonth(t *testing.T) {
	s, performanceUC := newTestScheduler(t, &config.SchedulerConfig{})
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 15, 0, 0, time.UTC) }

	performanceUC.EXPECT().
		Rollup(mock.Anything, (*entity.Principal)(nil), &usecase.RollupInput{Month: 12, Year: 2024}).
		RunAndReturn(func(ctx context.Context, _ *entity.Principal, input *usecase.RollupInput) (*usecase.RollupOutput, error) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.RollupOutput{Period: entity.Period{Month: input.Month, Year: input.Year}}, nil
		})

	s.rollupPreviousMonth()
}

func TestRollupPreviousMonth_FailureIsLogged(t *testing.T) {
	s, performanceUC := newTestScheduler(t, &config.SchedulerConfig{})
	s.now = func() time.Time { return time.Date(2024, 7, 1, 0, 15, 0, 0, time.UTC) }

	performanceUC.EXPECT().
		Rollup(mock.Anything, (*entity.Principal)(nil), &usecase.RollupInput{Month: 6, Year: 2024}).
		Return(nil, errors.New("database unavailable"))

	assert.NotPanics(t, s.rollupPreviousMonth)
}

var _ cron.Logger = (*slogAdapter)(nil)
