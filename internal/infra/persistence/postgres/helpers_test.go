package postgres

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"medrep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, model.Migrate(db))

	return db
}

// countingHasher records how many times Hash is called.
type countingHasher struct {
	calls atomic.Int32
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.calls.Add(1)

	return "hashed:" + password, nil
}

func (h *countingHasher) Check(password, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == password
}
