package postgres

import (
	"context"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/repository"

	"gorm.io/gorm"
)

const nextSequenceSQL = `INSERT INTO sequences (name, value) VALUES (?, 1)
ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
RETURNING value`

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next increments the counter in a single statement, so concurrent callers never share a value.
func (repo *sequenceRepository) Next(ctx context.Context, name entity.SequenceName) (int64, error) {
	var value int64
	if err := repo.db.WithContext(ctx).Raw(nextSequenceSQL, string(name)).Scan(&value).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to advance sequence "+string(name))
	}

	return value, nil
}
