package usecase

import (
	"context"

	"huntlog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHuntInput defines a new hunt for the calling owner.
type CreateHuntInput struct {
	Name              string
	TargetEntityIDs   []int64
	ExcludedEntityIDs []int64
	BingoEnabled      bool
}

// UpdateHuntSettingsInput is a partial update: nil fields are left unchanged
// and an empty, non-nil slice clears the list.
type UpdateHuntSettingsInput struct {
	HuntID            uuid.UUID
	Name              *string
	TargetEntityIDs   []int64
	ExcludedEntityIDs []int64
	BingoEnabled      *bool
}

// HuntUsecase defines hunt lifecycle operations. Only the owner may mutate a hunt.
type HuntUsecase interface {
	// CreateHunt pauses the owner's current ACTIVE hunt, if any.
	CreateHunt(ctx context.Context, session *entity.Session, input CreateHuntInput) (*entity.Hunt, error)
	UpdateSettings(ctx context.Context, session *entity.Session, input UpdateHuntSettingsInput) (*entity.Hunt, error)

	// ChangeStatus applies a lifecycle transition. Resuming a hunt pauses the
	// owner's other ACTIVE hunt.
	ChangeStatus(ctx context.Context, session *entity.Session, huntID uuid.UUID, status entity.HuntStatus) (*entity.Hunt, error)

	GetHunt(ctx context.Context, huntID uuid.UUID) (*entity.Hunt, error)
	ListHunts(ctx context.Context, ownerID entity.SubjectID) ([]*entity.Hunt, error)
}
