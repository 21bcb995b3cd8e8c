package usecase

import (
	"context"

	"huntlog/internal/domain/entity"

	"github.com/google/uuid"
)

// Authorization is the caller's standing against one hunt.
type Authorization struct {
	Hunt *entity.Hunt
	Tier entity.Tier
}

// AuthorizationUsecase classifies callers. Every mutation goes through Authorize.
type AuthorizationUsecase interface {
	// Authorize loads the hunt and resolves the caller's tier against its owner.
	// A nil session resolves to TierUnauthorized.
	Authorize(ctx context.Context, session *entity.Session, huntID uuid.UUID) (*Authorization, error)

	// ResolveTier walks the tiers from highest to lowest against ownerID.
	// It never returns an error: dependency failures demote the caller.
	ResolveTier(ctx context.Context, session *entity.Session, ownerID entity.SubjectID) entity.Tier
}
