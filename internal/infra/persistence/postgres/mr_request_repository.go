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
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type mrRequestRepository struct {
	db *gorm.DB
}

// NewMRRequestRepository is the constructor for mrRequestRepository.
func NewMRRequestRepository(db *gorm.DB) repository.MRRequestRepository {
	return &mrRequestRepository{db: db}
}

// FindByID retrieves a single onboarding request.
func (repo *mrRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MRRequest, error) {
	var m model.MRRequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrMRRequestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find mr request")
	}

	return toMRRequestDomain(&m), nil
}

// FindPendingByEmail retrieves the pending request for an email, if any.
func (repo *mrRequestRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.MRRequest, error) {
	var m model.MRRequestModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND status = ?", entity.NormalizeEmail(email), string(entity.MRRequestPending)).
		First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrMRRequestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pending mr request")
	}

	return toMRRequestDomain(&m), nil
}

// List returns a page of onboarding requests. Requests have no owner.
func (repo *mrRequestRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.MRRequest, int64, error) {
	rows, total, err := findPage[model.MRRequestModel](repo.db.WithContext(ctx), criteria, nil)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list mr requests")
	}

	requests := make([]*entity.MRRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, toMRRequestDomain(&rows[i]))
	}

	return requests, total, nil
}

// Create persists a new onboarding request.
func (repo *mrRequestRepository) Create(ctx context.Context, request *entity.MRRequest) error {
	requestM := fromMRRequestDomain(request)
	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create mr request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// CountPending counts requests awaiting review.
func (repo *mrRequestRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.MRRequestModel{}).
		Where("status = ?", string(entity.MRRequestPending)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count mr requests")
	}

	return count, nil
}

// MarkProcessed moves a pending request to its final status with a compare-and-swap on status.
func (repo *mrRequestRepository) MarkProcessed(ctx context.Context, request *entity.MRRequest) error {
	now := time.Now().UTC()
	if request.ProcessedAt == nil {
		request.ProcessedAt = &now
	}

	db := repo.db.WithContext(ctx)
	result := db.Model(&model.MRRequestModel{}).
		Where("id = ? AND status = ?", request.ID, string(entity.MRRequestPending)).
		Updates(map[string]any{
			"status":           string(request.Status),
			"processed_by":     request.ProcessedBy,
			"processed_at":     request.ProcessedAt.UTC(),
			"rejection_reason": request.RejectionReason,
			"created_user_id":  request.CreatedUserID,
			"updated_at":       now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to process mr request")
	}
	if result.RowsAffected == 0 {
		err := missingOrStale[model.MRRequestModel](db, request.ID, repository.ErrMRRequestNotFound)
		if errors.Is(err, repository.ErrStaleState) {
			return repository.ErrAlreadyProcessed
		}

		return err
	}
	request.UpdatedAt = now

	return nil
}

func toMRRequestDomain(data *model.MRRequestModel) *entity.MRRequest {
	if data == nil {
		return nil
	}

	return &entity.MRRequest{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		Territory:       data.Territory,
		Region:          data.Region,
		City:            data.City,
		Qualification:   data.Qualification,
		ExperienceYears: data.ExperienceYears,
		Message:         data.Message,
		Status:          entity.MRRequestStatus(data.Status),
		ProcessedBy:     data.ProcessedBy,
		ProcessedAt:     data.ProcessedAt,
		RejectionReason: data.RejectionReason,
		CreatedUserID:   data.CreatedUserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromMRRequestDomain(data *entity.MRRequest) *model.MRRequestModel {
	if data == nil {
		return nil
	}

	return &model.MRRequestModel{
		ID:              data.ID,
		Name:            data.Name,
		Email:           entity.NormalizeEmail(data.Email),
		Phone:           data.Phone,
		Territory:       data.Territory,
		Region:          data.Region,
		City:            data.City,
		Qualification:   data.Qualification,
		ExperienceYears: data.ExperienceYears,
		Message:         data.Message,
		Status:          string(data.Status),
		ProcessedBy:     data.ProcessedBy,
		ProcessedAt:     data.ProcessedAt,
		RejectionReason: data.RejectionReason,
		CreatedUserID:   data.CreatedUserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
