package repository

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDelegateNotFound is returned when no grant exists for a pair.
var ErrDelegateNotFound = errors.New("delegate grant not found")

// DelegateRepository defines delegate grant persistence.
type DelegateRepository interface {
	// Upsert stores one row per (owner, delegate), overwriting handle and expiry.
	Upsert(ctx context.Context, grant *entity.DelegateGrant) error

	// Find returns the grant regardless of expiry.
	Find(ctx context.Context, ownerID, delegateID entity.SubjectID) (*entity.DelegateGrant, error)

	ListByOwner(ctx context.Context, ownerID entity.SubjectID) ([]*entity.DelegateGrant, error)

	// Expire sets the grant expiry to at.
	Expire(ctx context.Context, ownerID, delegateID entity.SubjectID, at time.Time) error
}
