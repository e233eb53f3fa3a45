package postgres

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var periodColumns = []clause.Column{{Name: "mr_id"}, {Name: "month"}, {Name: "year"}}

type mrTargetRepository struct {
	db *gorm.DB
}

// NewMRTargetRepository is the constructor for mrTargetRepository.
func NewMRTargetRepository(db *gorm.DB) repository.MRTargetRepository {
	return &mrTargetRepository{db: db}
}

// FindByID retrieves a single target.
func (repo *mrTargetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MRTarget, error) {
	var m model.MRTargetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrTargetNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find target")
	}

	return toTargetDomain(&m), nil
}

// FindByPeriod retrieves the target of one MR for one month.
func (repo *mrTargetRepository) FindByPeriod(ctx context.Context, mrID uuid.UUID, period entity.Period) (*entity.MRTarget, error) {
	var m model.MRTargetModel
	err := repo.db.WithContext(ctx).
		Where("mr_id = ? AND month = ? AND year = ?", mrID, period.Month, period.Year).
		First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrTargetNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find target by period")
	}

	return toTargetDomain(&m), nil
}

// ListByPeriod returns every target for one month.
func (repo *mrTargetRepository) ListByPeriod(ctx context.Context, period entity.Period) ([]*entity.MRTarget, error) {
	var rows []model.MRTargetModel
	err := repo.db.WithContext(ctx).
		Where("month = ? AND year = ?", period.Month, period.Year).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list targets by period")
	}

	targets := make([]*entity.MRTarget, 0, len(rows))
	for i := range rows {
		targets = append(targets, toTargetDomain(&rows[i]))
	}

	return targets, nil
}

// List returns a page of targets.
func (repo *mrTargetRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.MRTarget, int64, error) {
	rows, total, err := findPage[model.MRTargetModel](repo.db.WithContext(ctx), criteria, ownerColumn("mr_id"))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list targets")
	}

	targets := make([]*entity.MRTarget, 0, len(rows))
	for i := range rows {
		targets = append(targets, toTargetDomain(&rows[i]))
	}

	return targets, total, nil
}

// Create persists a new target.
func (repo *mrTargetRepository) Create(ctx context.Context, target *entity.MRTarget) error {
	targetM := fromTargetDomain(target)
	if err := repo.db.WithContext(ctx).Create(targetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTargetExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create target")
	}

	target.ID = targetM.ID
	target.CreatedAt = targetM.CreatedAt
	target.UpdatedAt = targetM.UpdatedAt

	return nil
}

// Update saves every mutable attribute of a target.
func (repo *mrTargetRepository) Update(ctx context.Context, target *entity.MRTarget) error {
	targetM := fromTargetDomain(target)
	targetM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.MRTargetModel{}).
		Where("id = ?", target.ID).
		Select("*").
		Omit("id", "created_by", "created_at").
		Updates(targetM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrTargetExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update target")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTargetNotFound
	}
	target.UpdatedAt = targetM.UpdatedAt

	return nil
}

// Delete removes a target.
func (repo *mrTargetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MRTargetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete target")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTargetNotFound
	}

	return nil
}

type mrPerformanceRepository struct {
	db *gorm.DB
}

// NewMRPerformanceRepository is the constructor for mrPerformanceRepository.
func NewMRPerformanceRepository(db *gorm.DB) repository.MRPerformanceRepository {
	return &mrPerformanceRepository{db: db}
}

// FindByID retrieves a single performance log.
func (repo *mrPerformanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MRPerformanceLog, error) {
	var m model.MRPerformanceLogModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrPerformanceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find performance log")
	}

	return toPerformanceDomain(&m), nil
}

// FindByPeriod retrieves the log of one MR for one month.
func (repo *mrPerformanceRepository) FindByPeriod(ctx context.Context, mrID uuid.UUID, period entity.Period) (*entity.MRPerformanceLog, error) {
	var m model.MRPerformanceLogModel
	err := repo.db.WithContext(ctx).
		Where("mr_id = ? AND month = ? AND year = ?", mrID, period.Month, period.Year).
		First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrPerformanceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find performance log by period")
	}

	return toPerformanceDomain(&m), nil
}

// List returns a page of performance logs.
func (repo *mrPerformanceRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.MRPerformanceLog, int64, error) {
	rows, total, err := findPage[model.MRPerformanceLogModel](repo.db.WithContext(ctx), criteria, ownerColumn("mr_id"))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list performance logs")
	}

	logs := make([]*entity.MRPerformanceLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, toPerformanceDomain(&rows[i]))
	}

	return logs, total, nil
}

// Create persists a new performance log.
func (repo *mrPerformanceRepository) Create(ctx context.Context, log *entity.MRPerformanceLog) error {
	logM := fromPerformanceDomain(log)
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPerformanceExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create performance log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// Update saves every mutable attribute of a performance log.
func (repo *mrPerformanceRepository) Update(ctx context.Context, log *entity.MRPerformanceLog) error {
	logM := fromPerformanceDomain(log)
	logM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.MRPerformanceLogModel{}).
		Where("id = ?", log.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(logM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPerformanceExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update performance log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPerformanceNotFound
	}
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// Delete removes a performance log.
func (repo *mrPerformanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MRPerformanceLogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete performance log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPerformanceNotFound
	}

	return nil
}

// Upsert inserts the log or replaces the computed figures of the existing (mr, month, year) row.
// Remarks on an existing row are preserved.
func (repo *mrPerformanceRepository) Upsert(ctx context.Context, log *entity.MRPerformanceLog) error {
	logM := fromPerformanceDomain(log)
	now := time.Now().UTC()
	logM.UpdatedAt = now
	if logM.ComputedAt.IsZero() {
		logM.ComputedAt = now
	}

	db := repo.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: periodColumns,
		DoUpdates: clause.AssignmentColumns([]string{
			"visits_completed", "orders_placed", "sales_value", "doctors_covered",
			"achievement_percent", "computed_at", "updated_at",
		}),
	}).Create(logM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert performance log")
	}

	stored, err := repo.FindByPeriod(ctx, log.MRID, entity.Period{Month: log.Month, Year: log.Year})
	if err != nil {
		return err
	}
	*log = *stored

	return nil
}

func toTargetDomain(data *model.MRTargetModel) *entity.MRTarget {
	if data == nil {
		return nil
	}

	return &entity.MRTarget{
		ID:              data.ID,
		MRID:            data.MRID,
		Month:           data.Month,
		Year:            data.Year,
		VisitTarget:     data.VisitTarget,
		OrderTarget:     data.OrderTarget,
		SalesTarget:     data.SalesTarget,
		NewDoctorTarget: data.NewDoctorTarget,
		Notes:           data.Notes,
		CreatedBy:       data.CreatedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromTargetDomain(data *entity.MRTarget) *model.MRTargetModel {
	if data == nil {
		return nil
	}

	return &model.MRTargetModel{
		ID:              data.ID,
		MRID:            data.MRID,
		Month:           data.Month,
		Year:            data.Year,
		VisitTarget:     data.VisitTarget,
		OrderTarget:     data.OrderTarget,
		SalesTarget:     data.SalesTarget,
		NewDoctorTarget: data.NewDoctorTarget,
		Notes:           data.Notes,
		CreatedBy:       data.CreatedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toPerformanceDomain(data *model.MRPerformanceLogModel) *entity.MRPerformanceLog {
	if data == nil {
		return nil
	}

	return &entity.MRPerformanceLog{
		ID:                 data.ID,
		MRID:               data.MRID,
		Month:              data.Month,
		Year:               data.Year,
		VisitsCompleted:    data.VisitsCompleted,
		OrdersPlaced:       data.OrdersPlaced,
		SalesValue:         data.SalesValue,
		DoctorsCovered:     data.DoctorsCovered,
		AchievementPercent: data.AchievementPercent,
		Remarks:            data.Remarks,
		ComputedAt:         data.ComputedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromPerformanceDomain(data *entity.MRPerformanceLog) *model.MRPerformanceLogModel {
	if data == nil {
		return nil
	}

	return &model.MRPerformanceLogModel{
		ID:                 data.ID,
		MRID:               data.MRID,
		Month:              data.Month,
		Year:               data.Year,
		VisitsCompleted:    data.VisitsCompleted,
		OrdersPlaced:       data.OrdersPlaced,
		SalesValue:         data.SalesValue,
		DoctorsCovered:     data.DoctorsCovered,
		AchievementPercent: data.AchievementPercent,
		Remarks:            data.Remarks,
		ComputedAt:         data.ComputedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
