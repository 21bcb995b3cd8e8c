package usecase

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"
)

// GrantDelegateInput defines a time-boxed write grant from the caller to a delegate.
type GrantDelegateInput struct {
	DelegateID     entity.SubjectID
	DelegateHandle string
	ExpiresAt      time.Time
}

// DelegateUsecase manages the calling owner's delegates.
type DelegateUsecase interface {
	// GrantDelegate creates or extends the grant for the delegate.
	GrantDelegate(ctx context.Context, session *entity.Session, input GrantDelegateInput) (*entity.DelegateGrant, error)

	// RevokeDelegate expires the grant immediately, keeping the row.
	RevokeDelegate(ctx context.Context, session *entity.Session, delegateID entity.SubjectID) error

	ListDelegates(ctx context.Context, session *entity.Session) ([]*entity.DelegateGrant, error)
}
