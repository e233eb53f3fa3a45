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
)

// statuses that count as a completed visit
var completedVisitStatuses = []string{string(entity.VisitStatusSubmitted), string(entity.VisitStatusApproved)}

type visitReportRepository struct {
	db *gorm.DB
}

// NewVisitReportRepository is the constructor for visitReportRepository.
func NewVisitReportRepository(db *gorm.DB) repository.VisitReportRepository {
	return &visitReportRepository{db: db}
}

// FindByID retrieves a single visit report.
func (repo *visitReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitReport, error) {
	var m model.VisitReportModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find visit report")
	}

	return toVisitDomain(&m), nil
}

// List returns a page of visit reports.
func (repo *visitReportRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.VisitReport, int64, error) {
	rows, total, err := findPage[model.VisitReportModel](repo.db.WithContext(ctx), criteria, ownerColumn("mr_id"))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list visit reports")
	}

	visits := make([]*entity.VisitReport, 0, len(rows))
	for i := range rows {
		visits = append(visits, toVisitDomain(&rows[i]))
	}

	return visits, total, nil
}

// Create persists a new visit report.
func (repo *visitReportRepository) Create(ctx context.Context, visit *entity.VisitReport) error {
	visitM := fromVisitDomain(visit)
	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("visit id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit report")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// Update saves the report only if its stored status still equals expected.
func (repo *visitReportRepository) Update(ctx context.Context, visit *entity.VisitReport, expected entity.VisitStatus) error {
	visitM := fromVisitDomain(visit)
	visitM.UpdatedAt = time.Now().UTC()

	db := repo.db.WithContext(ctx)
	result := db.Model(&model.VisitReportModel{}).
		Where("id = ? AND status = ?", visit.ID, string(expected)).
		Select("*").
		Omit("id", "visit_id", "mr_id", "created_at").
		Updates(visitM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update visit report")
	}
	if result.RowsAffected == 0 {
		return missingOrStale[model.VisitReportModel](db, visit.ID, repository.ErrVisitNotFound)
	}
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// Delete removes a visit report.
func (repo *visitReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VisitReportModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete visit report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// CountByStatus groups reports by status, optionally for one MR.
func (repo *visitReportRepository) CountByStatus(ctx context.Context, mrID *uuid.UUID) ([]entity.StatusCount, error) {
	db := repo.db.WithContext(ctx).Model(&model.VisitReportModel{})
	if mrID != nil {
		db = db.Where("mr_id = ?", *mrID)
	}

	var rows []entity.StatusCount
	err := db.Select("status, COUNT(*) AS count").Group("status").Order("status").Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count visit reports")
	}

	return rows, nil
}

type visitStatRow struct {
	MRID           uuid.UUID `gorm:"column:mr_id"`
	Visits         int64     `gorm:"column:visits"`
	DoctorsCovered int64     `gorm:"column:doctors_covered"`
}

// StatsBetween summarises submitted and approved visits per MR in [from, to).
func (repo *visitReportRepository) StatsBetween(ctx context.Context, from, to time.Time) ([]repository.VisitStat, error) {
	var rows []visitStatRow
	err := repo.db.WithContext(ctx).Model(&model.VisitReportModel{}).
		Select("mr_id, COUNT(*) AS visits, COUNT(DISTINCT doctor_id) AS doctors_covered").
		Where("visit_date >= ? AND visit_date < ?", from.UTC(), to.UTC()).
		Where("status IN ?", completedVisitStatuses).
		Group("mr_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to summarise visits")
	}

	stats := make([]repository.VisitStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, repository.VisitStat{MRID: r.MRID, Visits: r.Visits, DoctorsCovered: r.DoctorsCovered})
	}

	return stats, nil
}

// missingOrStale tells a vanished row from one whose guarded state moved on.
func missingOrStale[M any](db *gorm.DB, id uuid.UUID, notFound error) error {
	var count int64
	if err := db.Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload record")
	}
	if count == 0 {
		return notFound
	}

	return repository.ErrStaleState
}

func toVisitDomain(data *model.VisitReportModel) *entity.VisitReport {
	if data == nil {
		return nil
	}

	products := data.ProductsDiscussed
	if products == nil {
		products = []uuid.UUID{}
	}

	return &entity.VisitReport{
		ID:                data.ID,
		VisitID:           data.VisitID,
		MRID:              data.MRID,
		DoctorID:          data.DoctorID,
		VisitDate:         data.VisitDate,
		Purpose:           data.Purpose,
		ProductsDiscussed: products,
		SamplesGiven:      data.SamplesGiven,
		Notes:             data.Notes,
		Feedback:          data.Feedback,
		FollowUpDate:      data.FollowUpDate,
		Location:          data.Location,
		Status:            entity.VisitStatus(data.Status),
		ApprovedBy:        data.ApprovedBy,
		ApprovedAt:        data.ApprovedAt,
		RejectionReason:   data.RejectionReason,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromVisitDomain(data *entity.VisitReport) *model.VisitReportModel {
	if data == nil {
		return nil
	}

	return &model.VisitReportModel{
		ID:                data.ID,
		VisitID:           data.VisitID,
		MRID:              data.MRID,
		DoctorID:          data.DoctorID,
		VisitDate:         data.VisitDate.UTC(),
		Purpose:           data.Purpose,
		ProductsDiscussed: data.ProductsDiscussed,
		SamplesGiven:      data.SamplesGiven,
		Notes:             data.Notes,
		Feedback:          data.Feedback,
		FollowUpDate:      data.FollowUpDate,
		Location:          data.Location,
		Status:            string(data.Status),
		ApprovedBy:        data.ApprovedBy,
		ApprovedAt:        data.ApprovedAt,
		RejectionReason:   data.RejectionReason,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
