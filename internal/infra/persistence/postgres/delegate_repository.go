package postgres

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// delegateRepository implements the repository.DelegateRepository interface.
type delegateRepository struct {
	db *gorm.DB
}

// NewDelegateRepository is the constructor for delegateRepository.
func NewDelegateRepository(db *gorm.DB) repository.DelegateRepository {
	return &delegateRepository{db: db}
}

func (repo *delegateRepository) Upsert(ctx context.Context, grant *entity.DelegateGrant) error {
	grantM := fromDelegateDomain(grant)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "delegate_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"delegate_handle", "expires_at", "updated_at"}),
		}).
		Create(grantM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert delegate grant")
	}

	return nil
}

func (repo *delegateRepository) Find(ctx context.Context, ownerID, delegateID entity.SubjectID) (*entity.DelegateGrant, error) {
	var grantM model.DelegateGrantModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND delegate_id = ?", int64(ownerID), int64(delegateID)).
		First(&grantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDelegateNotFound
		}

		return nil, errors.Wrap(err, "failed to find delegate grant")
	}

	return toDelegateDomain(&grantM), nil
}

func (repo *delegateRepository) ListByOwner(ctx context.Context, ownerID entity.SubjectID) ([]*entity.DelegateGrant, error) {
	var grantModels []*model.DelegateGrantModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", int64(ownerID)).
		Order("expires_at DESC").
		Find(&grantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delegate grants")
	}

	grants := make([]*entity.DelegateGrant, 0, len(grantModels))
	for _, grantM := range grantModels {
		grants = append(grants, toDelegateDomain(grantM))
	}

	return grants, nil
}

func (repo *delegateRepository) Expire(ctx context.Context, ownerID, delegateID entity.SubjectID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DelegateGrantModel{}).
		Where("owner_id = ? AND delegate_id = ?", int64(ownerID), int64(delegateID)).
		Updates(map[string]any{
			"expires_at": at,
			"updated_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to expire delegate grant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDelegateNotFound
	}

	return nil
}

func toDelegateDomain(data *model.DelegateGrantModel) *entity.DelegateGrant {
	if data == nil {
		return nil
	}

	return &entity.DelegateGrant{
		OwnerID:        entity.SubjectID(data.OwnerID),
		DelegateID:     entity.SubjectID(data.DelegateID),
		DelegateHandle: data.DelegateHandle,
		ExpiresAt:      data.ExpiresAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDelegateDomain(data *entity.DelegateGrant) *model.DelegateGrantModel {
	if data == nil {
		return nil
	}

	return &model.DelegateGrantModel{
		OwnerID:        int64(data.OwnerID),
		DelegateID:     int64(data.DelegateID),
		DelegateHandle: data.DelegateHandle,
		ExpiresAt:      data.ExpiresAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
