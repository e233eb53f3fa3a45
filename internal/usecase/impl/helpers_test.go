package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medrep/config"
	"medrep/internal/domain/entity"
	"medrep/internal/domain/repository"
	mockRepo "medrep/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:         4,
			TempPasswordLength: 12,
		},
		Pagination: &config.PaginationConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
	}
}

func adminPrincipal() *entity.Principal {
	return &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin, Name: "Admin", Email: "admin@example.com"}
}

func mrPrincipal() *entity.Principal {
	return &entity.Principal{ID: uuid.New(), Role: entity.RoleMR, Name: "Field Rep", Email: "rep@example.com"}
}

// freezeTime pins utcNow for the duration of the test.
func freezeTime(t *testing.T, now time.Time) {
	t.Helper()

	original := utcNow
	utcNow = func() time.Time { return now }
	t.Cleanup(func() { utcNow = original })
}

// expectTx runs the transactional closure against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
