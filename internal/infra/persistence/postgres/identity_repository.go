// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	"medrep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// identityRepository implements repository.IdentityRepository using GORM.
// It owns credential hashing so a plaintext is hashed exactly once.
type identityRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB, hasher service.PasswordHasher) repository.IdentityRepository {
	return &identityRepository{db: db, hasher: hasher}
}

// FindByID retrieves a single identity by its unique ID. Credential and status reads
// go to the primary so a fresh deactivation or password change is never missed.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var m model.IdentityModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&m), nil
}

// FindByEmail retrieves an identity by normalized email.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var m model.IdentityModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("email = ?", entity.NormalizeEmail(email)).First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by email")
	}

	return toIdentityDomain(&m), nil
}

// List returns a page of identities. An identity owns itself.
func (repo *identityRepository) List(ctx context.Context, criteria *query.Criteria) ([]*entity.Identity, int64, error) {
	rows, total, err := findPage[model.IdentityModel](repo.db.WithContext(ctx), criteria, ownerColumn("id"))
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(rows))
	for i := range rows {
		identities = append(identities, toIdentityDomain(&rows[i]))
	}

	return identities, total, nil
}

// ListActiveByRole returns every active identity with the role.
func (repo *identityRepository) ListActiveByRole(ctx context.Context, role entity.Role) ([]*entity.Identity, error) {
	var rows []model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role.String(), true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list identities by role")
	}

	identities := make([]*entity.Identity, 0, len(rows))
	for i := range rows {
		identities = append(identities, toIdentityDomain(&rows[i]))
	}

	return identities, nil
}

// FindActiveByIDs returns the active identities among ids with the given role.
func (repo *identityRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID, role entity.Role) ([]*entity.Identity, error) {
	if len(ids) == 0 {
		return []*entity.Identity{}, nil
	}

	var rows []model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("id IN ? AND role = ? AND is_active = ?", ids, role.String(), true).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identities by ids")
	}

	identities := make([]*entity.Identity, 0, len(rows))
	for i := range rows {
		identities = append(identities, toIdentityDomain(&rows[i]))
	}

	return identities, nil
}

// CountActiveByRole counts active identities with the role.
func (repo *identityRepository) CountActiveByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.IdentityModel{}).
		Where("role = ? AND is_active = ?", role.String(), true).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count identities")
	}

	return count, nil
}

// Create persists a new identity, hashing a pending plaintext credential.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	if err := repo.hashPending(identity); err != nil {
		return err
	}

	identityM := fromIdentityDomain(identity)
	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("identity already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ClearPendingPassword()
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// Update saves every mutable attribute of an existing identity.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	if err := repo.hashPending(identity); err != nil {
		return err
	}

	identityM := fromIdentityDomain(identity)
	identityM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.IdentityModel{}).
		Where("id = ?", identity.ID).
		Select("*").
		Omit("id", "employee_id", "created_at").
		Updates(identityM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	identity.ClearPendingPassword()
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// UpdateLastLogin records a successful login.
func (repo *identityRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.IdentityModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at.UTC())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func (repo *identityRepository) hashPending(identity *entity.Identity) error {
	plain, ok := identity.PendingPassword()
	if !ok {
		return nil
	}

	hash, err := repo.hasher.Hash(plain)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	identity.PasswordHash = hash

	return nil
}

// toIdentityDomain converts an IdentityModel to an entity.Identity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:                 data.ID,
		EmployeeID:         data.EmployeeID,
		Name:               data.Name,
		Email:              data.Email,
		Phone:              data.Phone,
		Role:               entity.Role(data.Role),
		IsActive:           data.IsActive,
		Territory:          data.Territory,
		Region:             data.Region,
		City:               data.City,
		ReportingManagerID: data.ReportingManagerID,
		MustChangePassword: data.MustChangePassword,
		LastLoginAt:        data.LastLoginAt,
		PasswordHash:       data.PasswordHash,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromIdentityDomain converts an entity.Identity to an IdentityModel.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if parsed, ok := entity.ParseRole(string(data.Role)); ok {
		role = parsed
	}

	return &model.IdentityModel{
		ID:                 data.ID,
		EmployeeID:         data.EmployeeID,
		Name:               data.Name,
		Email:              entity.NormalizeEmail(data.Email),
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		Role:               role.String(),
		IsActive:           data.IsActive,
		Territory:          data.Territory,
		Region:             data.Region,
		City:               data.City,
		ReportingManagerID: data.ReportingManagerID,
		MustChangePassword: data.MustChangePassword,
		LastLoginAt:        data.LastLoginAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
