package postgres

import (
	"context"

	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// encounterRepository implements the repository.EncounterRepository interface.
type encounterRepository struct {
	db *gorm.DB
}

// NewEncounterRepository is the constructor for encounterRepository.
func NewEncounterRepository(db *gorm.DB) repository.EncounterRepository {
	return &encounterRepository{db: db}
}

// Create inserts a live encounter. The partial unique index on
// (hunt_id, slot_number) decides concurrent claims on one slot.
func (repo *encounterRepository) Create(ctx context.Context, encounter *entity.Encounter) error {
	encounterM := fromEncounterDomain(encounter)

	if err := repo.db.WithContext(ctx).Create(encounterM).Error; err != nil {
		if violatesConstraint(err, constraintActiveSlot) {
			return repository.ErrSlotConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHuntNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPayload.WrapMessage("encounter violates a schema check")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create encounter")
	}

	return nil
}

func (repo *encounterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Encounter, error) {
	var encounterM model.EncounterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&encounterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEncounterNotFound
		}

		return nil, errors.Wrap(err, "failed to find encounter by ID")
	}

	return toEncounterDomain(&encounterM), nil
}

func (repo *encounterRepository) FindActiveBySlot(ctx context.Context, huntID uuid.UUID, slot int) (*entity.Encounter, error) {
	var encounterM model.EncounterModel

	if err := repo.db.WithContext(ctx).
		Where("hunt_id = ? AND slot_number = ? AND is_deleted = ?", huntID, slot, false).
		First(&encounterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEncounterNotFound
		}

		return nil, errors.Wrap(err, "failed to find encounter by slot")
	}

	return toEncounterDomain(&encounterM), nil
}

func (repo *encounterRepository) ListByHunt(ctx context.Context, huntID uuid.UUID, includeDeleted bool) ([]*entity.Encounter, error) {
	var encounterModels []*model.EncounterModel

	query := repo.db.WithContext(ctx).Where("hunt_id = ?", huntID)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	if err := query.Order("occurred_at ASC, id ASC").Find(&encounterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list encounters by hunt")
	}

	encounters := make([]*entity.Encounter, 0, len(encounterModels))
	for _, encounterM := range encounterModels {
		encounters = append(encounters, toEncounterDomain(encounterM))
	}

	return encounters, nil
}

// SoftDelete is conditional on is_deleted = false so two concurrent deletes
// leave the first deletion's columns in place.
func (repo *encounterRepository) SoftDelete(ctx context.Context, encounter *entity.Encounter) (bool, error) {
	if !encounter.IsDeleted || encounter.DeletedBy == nil || encounter.DeletedAt == nil {
		return false, errors.New("encounter must be marked deleted before persisting")
	}

	var slot any = gorm.Expr("NULL")
	if encounter.SlotNumber != nil {
		slot = *encounter.SlotNumber
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EncounterModel{}).
		Where("id = ? AND is_deleted = ?", encounter.ID, false).
		Updates(map[string]any{
			"is_deleted":  true,
			"deleted_by":  int64(*encounter.DeletedBy),
			"deleted_at":  *encounter.DeletedAt,
			"slot_number": slot,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to soft delete encounter")
	}

	return result.RowsAffected > 0, nil
}

func toEncounterDomain(data *model.EncounterModel) *entity.Encounter {
	if data == nil {
		return nil
	}

	encounter := &entity.Encounter{
		ID:         data.ID,
		HuntID:     data.HuntID,
		SlotNumber: data.SlotNumber,
		EntityID:   data.EntityID,
		CreatedBy:  entity.SubjectID(data.CreatedBy),
		OccurredAt: data.OccurredAt,
		IsDeleted:  data.IsDeleted,
		DeletedAt:  data.DeletedAt,
	}
	if data.DeletedBy != nil {
		deletedBy := entity.SubjectID(*data.DeletedBy)
		encounter.DeletedBy = &deletedBy
	}

	return encounter
}

func fromEncounterDomain(data *entity.Encounter) *model.EncounterModel {
	if data == nil {
		return nil
	}

	encounterM := &model.EncounterModel{
		ID:         data.ID,
		HuntID:     data.HuntID,
		SlotNumber: data.SlotNumber,
		EntityID:   data.EntityID,
		CreatedBy:  int64(data.CreatedBy),
		OccurredAt: data.OccurredAt,
		IsDeleted:  data.IsDeleted,
		DeletedAt:  data.DeletedAt,
	}
	if data.DeletedBy != nil {
		deletedBy := int64(*data.DeletedBy)
		encounterM.DeletedBy = &deletedBy
	}

	return encounterM
}
