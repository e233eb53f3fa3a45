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

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository is the constructor for doctorRepository.
func NewDoctorRepository(db *gorm.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func preloadAssignments(db *gorm.DB) *gorm.DB {
	return db.Preload("Assignments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC")
	})
}

// FindByID retrieves a doctor with its assignments.
func (repo *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var m model.DoctorModel
	err := repo.db.WithContext(ctx).Scopes(preloadAssignments).Where("id = ?", id).First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrDoctorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find doctor")
	}

	return toDoctorDomain(&m), nil
}

// List returns a page of doctors. An owner in the criteria means "assigned to".
func (repo *doctorRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.Doctor, int64, error) {
	rows, total, err := findPage[model.DoctorModel](repo.db.WithContext(ctx), criteria, assignedTo, preloadAssignments)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list doctors")
	}

	doctors := make([]*entity.Doctor, 0, len(rows))
	for i := range rows {
		doctors = append(doctors, toDoctorDomain(&rows[i]))
	}

	return doctors, total, nil
}

// Create persists a doctor together with its initial assignments.
func (repo *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	doctorM := fromDoctorDomain(doctor)
	if err := repo.db.WithContext(ctx).Create(doctorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create doctor")
	}

	doctor.ID = doctorM.ID
	doctor.CreatedAt = doctorM.CreatedAt
	doctor.UpdatedAt = doctorM.UpdatedAt

	return nil
}

// Update saves the doctor's attributes. Assignments change only through ReplaceAssignments.
func (repo *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	doctorM := fromDoctorDomain(doctor)
	doctorM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.DoctorModel{}).
		Where("id = ?", doctor.ID).
		Select("*").
		Omit("id", "created_by", "created_at", clause.Associations).
		Updates(doctorM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update doctor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDoctorNotFound
	}
	doctor.UpdatedAt = doctorM.UpdatedAt

	return nil
}

// Delete removes the doctor and its assignments.
func (repo *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", id).Delete(&model.DoctorAssignmentModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete doctor assignments")
		}

		result := tx.Where("id = ?", id).Delete(&model.DoctorModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete doctor")
		}
		if result.RowsAffected == 0 {
			return repository.ErrDoctorNotFound
		}

		return nil
	})
}

// ReplaceAssignments sets the doctor's assigned MRs to exactly mrIDs.
func (repo *doctorRepository) ReplaceAssignments(ctx context.Context, doctorID uuid.UUID, mrIDs []uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.DoctorModel{}).Where("id = ?", doctorID).Count(&exists).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to load doctor")
		}
		if exists == 0 {
			return repository.ErrDoctorNotFound
		}

		if err := tx.Where("doctor_id = ?", doctorID).Delete(&model.DoctorAssignmentModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear doctor assignments")
		}

		rows := toAssignmentModels(doctorID, mrIDs)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to assign doctor")
			}
		}

		return tx.Model(&model.DoctorModel{}).Where("id = ?", doctorID).
			UpdateColumn("updated_at", time.Now().UTC()).Error
	})
}

// CountActive counts active doctors, optionally only those assigned to an MR.
func (repo *doctorRepository) CountActive(ctx context.Context, mrID *uuid.UUID) (int64, error) {
	db := repo.db.WithContext(ctx).Model(&model.DoctorModel{}).Where("is_active = ?", true)
	if mrID != nil {
		db = assignedTo(db, *mrID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count doctors")
	}

	return count, nil
}

// toAssignmentModels de-duplicates ids while keeping their order.
func toAssignmentModels(doctorID uuid.UUID, mrIDs []uuid.UUID) []model.DoctorAssignmentModel {
	seen := make(map[uuid.UUID]struct{}, len(mrIDs))
	rows := make([]model.DoctorAssignmentModel, 0, len(mrIDs))
	now := time.Now().UTC()

	for i, id := range mrIDs {
		if _, dup := seen[id]; dup || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		// distinct timestamps keep the assignment order stable on reload
		rows = append(rows, model.DoctorAssignmentModel{DoctorID: doctorID, MRID: id, CreatedAt: now.Add(time.Duration(i) * time.Microsecond)})
	}

	return rows
}

func toDoctorDomain(data *model.DoctorModel) *entity.Doctor {
	if data == nil {
		return nil
	}

	assigned := make([]uuid.UUID, 0, len(data.Assignments))
	for _, a := range data.Assignments {
		assigned = append(assigned, a.MRID)
	}

	return &entity.Doctor{
		ID:             data.ID,
		Name:           data.Name,
		Specialization: data.Specialization,
		Qualification:  data.Qualification,
		Hospital:       data.Hospital,
		Phone:          data.Phone,
		Email:          data.Email,
		Address:        data.Address,
		City:           data.City,
		Territory:      data.Territory,
		Category:       entity.DoctorCategory(data.Category),
		AssignedMRs:    assigned,
		IsActive:       data.IsActive,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDoctorDomain(data *entity.Doctor) *model.DoctorModel {
	if data == nil {
		return nil
	}

	return &model.DoctorModel{
		ID:             data.ID,
		Name:           data.Name,
		Specialization: data.Specialization,
		Qualification:  data.Qualification,
		Hospital:       data.Hospital,
		Phone:          data.Phone,
		Email:          data.Email,
		Address:        data.Address,
		City:           data.City,
		Territory:      data.Territory,
		Category:       string(data.Category),
		IsActive:       data.IsActive,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Assignments:    toAssignmentModels(data.ID, data.AssignedMRs),
	}
}
