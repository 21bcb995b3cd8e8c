package repository

import (
	"context"

	"huntlog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrEncounterNotFound is returned when an encounter does not exist.
	ErrEncounterNotFound = errors.New("encounter not found")
	// ErrSlotConflict is returned when the active-slot unique index rejects a write.
	ErrSlotConflict = errors.New("slot already occupied")
)

// EncounterRepository defines encounter log persistence. Rows are never
// physically removed and slot/entity are never rewritten in place.
type EncounterRepository interface {
	// Create inserts a new row. A uniqueness violation returns ErrSlotConflict.
	Create(ctx context.Context, encounter *entity.Encounter) error

	// FindByID returns the row in any state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Encounter, error)

	// FindActiveBySlot returns ErrEncounterNotFound when the slot is free.
	FindActiveBySlot(ctx context.Context, huntID uuid.UUID, slot int) (*entity.Encounter, error)

	// ListByHunt returns rows in occurrence order, deleted ones only when includeDeleted is set.
	ListByHunt(ctx context.Context, huntID uuid.UUID, includeDeleted bool) ([]*entity.Encounter, error)

	// SoftDelete writes the deletion columns and slot of an encounter that is
	// still active in storage. It reports false when the row was already deleted.
	SoftDelete(ctx context.Context, encounter *entity.Encounter) (bool, error)
}
