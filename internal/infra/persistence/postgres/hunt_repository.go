package postgres

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// huntRepository implements the repository.HuntRepository interface.
type huntRepository struct {
	db *gorm.DB
}

// NewHuntRepository is the constructor for huntRepository.
func NewHuntRepository(db *gorm.DB) repository.HuntRepository {
	return &huntRepository{db: db}
}

func (repo *huntRepository) Create(ctx context.Context, hunt *entity.Hunt) error {
	huntM := fromHuntDomain(hunt)

	if err := repo.db.WithContext(ctx).Create(huntM).Error; err != nil {
		if violatesConstraint(err, constraintActiveOwner) {
			return repository.ErrActiveHuntExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPayload.WrapMessage("hunt violates a schema check")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hunt")
	}

	hunt.CreatedAt = huntM.CreatedAt
	hunt.UpdatedAt = huntM.UpdatedAt

	return nil
}

func (repo *huntRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hunt, error) {
	var huntM model.HuntModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&huntM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHuntNotFound
		}

		return nil, errors.Wrap(err, "failed to find hunt by ID")
	}

	return toHuntDomain(&huntM), nil
}

func (repo *huntRepository) FindActiveByOwner(ctx context.Context, ownerID entity.SubjectID) (*entity.Hunt, error) {
	var huntM model.HuntModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", int64(ownerID), string(entity.HuntStatusActive)).
		First(&huntM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHuntNotFound
		}

		return nil, errors.Wrap(err, "failed to find active hunt")
	}

	return toHuntDomain(&huntM), nil
}

func (repo *huntRepository) ListByOwner(ctx context.Context, ownerID entity.SubjectID) ([]*entity.Hunt, error) {
	var huntModels []*model.HuntModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", int64(ownerID)).
		Order("created_at DESC").
		Find(&huntModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hunts by owner")
	}

	hunts := make([]*entity.Hunt, 0, len(huntModels))
	for _, huntM := range huntModels {
		hunts = append(hunts, toHuntDomain(huntM))
	}

	return hunts, nil
}

func (repo *huntRepository) UpdateSettings(ctx context.Context, hunt *entity.Hunt) error {
	huntM := fromHuntDomain(hunt)
	var stored []model.HuntModel

	result := repo.db.WithContext(ctx).
		Model(&stored).
		Clauses(clause.Returning{}).
		Where("id = ?", hunt.ID).
		Updates(map[string]any{
			"name":                huntM.Name,
			"target_entity_ids":   huntM.TargetEntityIDs,
			"excluded_entity_ids": huntM.ExcludedEntityIDs,
			"bingo_enabled":       huntM.BingoEnabled,
			"updated_at":          hunt.UpdatedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPayload.WrapMessage("hunt violates a schema check")
		}

		return errors.Wrap(result.Error, "failed to update hunt settings")
	}

	if result.RowsAffected == 0 || len(stored) == 0 {
		return repository.ErrHuntNotFound
	}

	hunt.Status = entity.HuntStatus(stored[0].Status)
	hunt.UpdatedAt = stored[0].UpdatedAt

	return nil
}

func (repo *huntRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.HuntStatus, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HuntModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": now,
		})

	if result.Error != nil {
		if violatesConstraint(result.Error, constraintActiveOwner) {
			return repository.ErrActiveHuntExists
		}

		return errors.Wrap(result.Error, "failed to update hunt status")
	}

	// The hunt was read moments ago, so a miss means another writer moved it.
	if result.RowsAffected == 0 {
		return repository.ErrHuntStatusChanged
	}

	return nil
}

func (repo *huntRepository) PauseActive(ctx context.Context, ownerID entity.SubjectID, exceptID uuid.UUID, now time.Time) (uuid.UUID, error) {
	var paused []model.HuntModel

	result := repo.db.WithContext(ctx).
		Model(&paused).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("owner_id = ? AND status = ? AND id <> ?", int64(ownerID), string(entity.HuntStatusActive), exceptID).
		Updates(map[string]any{
			"status":     string(entity.HuntStatusPaused),
			"updated_at": now,
		})
	if result.Error != nil {
		return uuid.Nil, errors.Wrap(result.Error, "failed to pause active hunt")
	}

	if len(paused) == 0 {
		return uuid.Nil, nil
	}

	return paused[0].ID, nil
}

func toHuntDomain(data *model.HuntModel) *entity.Hunt {
	if data == nil {
		return nil
	}

	return &entity.Hunt{
		ID:                data.ID,
		OwnerID:           entity.SubjectID(data.OwnerID),
		Name:              data.Name,
		Status:            entity.HuntStatus(data.Status),
		TargetEntityIDs:   nonNilIDs(data.TargetEntityIDs),
		ExcludedEntityIDs: nonNilIDs(data.ExcludedEntityIDs),
		BingoEnabled:      data.BingoEnabled,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromHuntDomain(data *entity.Hunt) *model.HuntModel {
	if data == nil {
		return nil
	}

	return &model.HuntModel{
		ID:                data.ID,
		OwnerID:           int64(data.OwnerID),
		Name:              data.Name,
		Status:            string(data.Status),
		TargetEntityIDs:   nonNilIDs(data.TargetEntityIDs),
		ExcludedEntityIDs: nonNilIDs(data.ExcludedEntityIDs),
		BingoEnabled:      data.BingoEnabled,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// nonNilIDs keeps jsonb columns as [] rather than null.
func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}

	return ids
}
