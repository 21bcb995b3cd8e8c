// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"huntlog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrHuntNotFound is returned when a hunt does not exist.
	ErrHuntNotFound = errors.New("hunt not found")
	// ErrActiveHuntExists is returned when a second ACTIVE hunt would be stored for one owner.
	ErrActiveHuntExists = errors.New("owner already has an active hunt")
	// ErrHuntStatusChanged is returned when a status write finds a different status than expected.
	ErrHuntStatusChanged = errors.New("hunt status changed concurrently")
)

// HuntRepository defines hunt persistence.
type HuntRepository interface {
	Create(ctx context.Context, hunt *entity.Hunt) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hunt, error)

	// FindActiveByOwner returns ErrHuntNotFound when the owner has no ACTIVE hunt.
	FindActiveByOwner(ctx context.Context, ownerID entity.SubjectID) (*entity.Hunt, error)

	ListByOwner(ctx context.Context, ownerID entity.SubjectID) ([]*entity.Hunt, error)

	// UpdateSettings persists name, entity lists, bingo flag and UpdatedAt.
	// Status is never written; hunt.Status is refreshed from the stored row.
	UpdateSettings(ctx context.Context, hunt *entity.Hunt) error

	// UpdateStatus moves the hunt from one status to another. It returns
	// ErrHuntStatusChanged when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.HuntStatus, now time.Time) error

	// PauseActive moves the owner's ACTIVE hunt, other than exceptID, to PAUSED.
	// It returns the paused hunt id, or uuid.Nil when nothing was active.
	PauseActive(ctx context.Context, ownerID entity.SubjectID, exceptID uuid.UUID, now time.Time) (uuid.UUID, error)
}
