package postgres

import (
	"context"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productActivityRepository struct {
	db *gorm.DB
}

// NewProductActivityRepository is the constructor for productActivityRepository.
func NewProductActivityRepository(db *gorm.DB) repository.ProductActivityRepository {
	return &productActivityRepository{db: db}
}

// Create appends an activity event.
func (repo *productActivityRepository) Create(ctx context.Context, activity *entity.ProductActivityLog) error {
	activityM := fromActivityDomain(activity)
	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record product activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// List returns a page of activity events.
func (repo *productActivityRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.ProductActivityLog, int64, error) {
	rows, total, err := findPage[model.ProductActivityLogModel](repo.db.WithContext(ctx), criteria, ownerColumn("mr_id"))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list product activity")
	}

	activities := make([]*entity.ProductActivityLog, 0, len(rows))
	for i := range rows {
		activities = append(activities, toActivityDomain(&rows[i]))
	}

	return activities, total, nil
}

type activitySummaryRow struct {
	ProductID     uuid.UUID `gorm:"column:product_id"`
	Action        string    `gorm:"column:action"`
	Events        int64     `gorm:"column:events"`
	TotalQuantity int64     `gorm:"column:total_quantity"`
}

// Summarize aggregates matching activity by product and action.
func (repo *productActivityRepository) Summarize(ctx context.Context, criteria *query.Criteria) ([]entity.ActivitySummary, error) {
	var rows []activitySummaryRow
	err := repo.db.WithContext(ctx).Model(&model.ProductActivityLogModel{}).
		Scopes(filterScope(criteria, ownerColumn("mr_id"))).
		Select("product_id, action, COUNT(*) AS events, COALESCE(SUM(quantity), 0) AS total_quantity").
		Group("product_id, action").
		Order("product_id, action").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to summarise product activity")
	}

	summary := make([]entity.ActivitySummary, 0, len(rows))
	for _, r := range rows {
		summary = append(summary, entity.ActivitySummary{
			ProductID:     r.ProductID,
			Action:        entity.ActivityAction(r.Action),
			Events:        r.Events,
			TotalQuantity: r.TotalQuantity,
		})
	}

	return summary, nil
}

func toActivityDomain(data *model.ProductActivityLogModel) *entity.ProductActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ProductActivityLog{
		ID:         data.ID,
		MRID:       data.MRID,
		ProductID:  data.ProductID,
		DoctorID:   data.DoctorID,
		Action:     entity.ActivityAction(data.Action),
		Quantity:   data.Quantity,
		Notes:      data.Notes,
		OccurredAt: data.OccurredAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromActivityDomain(data *entity.ProductActivityLog) *model.ProductActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ProductActivityLogModel{
		ID:         data.ID,
		MRID:       data.MRID,
		ProductID:  data.ProductID,
		DoctorID:   data.DoctorID,
		Action:     string(data.Action),
		Quantity:   data.Quantity,
		Notes:      data.Notes,
		OccurredAt: data.OccurredAt.UTC(),
		CreatedAt:  data.CreatedAt,
	}
}
