// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nameChangeRepository implements the domain.NameChangeRepository interface using GORM.
type nameChangeRepository struct {
	db *gorm.DB
}

// NewNameChangeRepository is the constructor for nameChangeRepository.
func NewNameChangeRepository(db *gorm.DB) repository.NameChangeRepository {
	return &nameChangeRepository{db: db}
}

// Create appends a new audit record.
func (repo *nameChangeRepository) Create(ctx context.Context, record *entity.NameChangeRecord) error {
	recordM := fromNameChangeDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNameChangeFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNameChangeFailed.WrapMessage("missing required audit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create name change record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// ListByUserID returns all audit records for a user, newest first.
func (repo *nameChangeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.NameChangeRecord, error) {
	var recordModels []model.NameChangeModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list name change records")
	}

	records := make([]*entity.NameChangeRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, toNameChangeDomain(&recordModels[i]))
	}

	return records, nil
}

// --- Mapper Functions ---

// toNameChangeDomain converts a GORM NameChangeModel to a domain NameChangeRecord entity.
func toNameChangeDomain(data *model.NameChangeModel) *entity.NameChangeRecord {
	if data == nil {
		return nil
	}

	return &entity.NameChangeRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		BeforeName: data.BeforeName,
		AfterName:  data.AfterName,
		CreatedAt:  data.CreatedAt,
	}
}

// fromNameChangeDomain converts a domain NameChangeRecord entity to a GORM NameChangeModel.
func fromNameChangeDomain(data *entity.NameChangeRecord) *model.NameChangeModel {
	if data == nil {
		return nil
	}

	return &model.NameChangeModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BeforeName: data.BeforeName,
		AfterName:  data.AfterName,
	}
}
